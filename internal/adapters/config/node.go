package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config.loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: "yarnix.yaml"}, nil
		},
	})
}
