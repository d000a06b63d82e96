package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/core/ports"
)

// NodeID is the unique identifier for the artifact fetcher Graft node.
const NodeID graft.ID = "adapter.fetch.http"

func init() {
	graft.Register(graft.Node[ports.ArtifactFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactFetcher, error) {
			return New(), nil
		},
	})
}
