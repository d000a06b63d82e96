package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	// The no-op recorder is the default; the CLI swaps in the progrock
	// recorder when --progress is requested.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoOp(), nil
		},
	})
}
