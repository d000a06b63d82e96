package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/adapters/fetch"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yarnix/internal/adapters/prefetch" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yarnix/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fetch.NodeID, prefetch.NodeID},
		Run: func(ctx context.Context) (*Reconciler, error) {
			fetcher, err := graft.Dep[ports.ArtifactFetcher](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.CommitResolver](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, resolver), nil
		},
	})
}
