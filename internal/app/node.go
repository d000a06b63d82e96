package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/yarnix/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/yarnix/internal/adapters/yarnlock"  //nolint:depguard // Wired in app layer
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/yarnix/internal/engine/reconciler"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			yarnlock.NodeID,
			reconciler.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			codec, err := graft.Dep[ports.LockfileCodec](ctx)
			if err != nil {
				return nil, err
			}
			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(codec, rec, log, tel), nil
		},
	})
}
