package prefetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/core/ports"
)

// NodeID is the unique identifier for the commit resolver Graft node.
const NodeID graft.ID = "adapter.prefetch.git"

func init() {
	graft.Register(graft.Node[ports.CommitResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommitResolver, error) {
			return New(), nil
		},
	})
}
