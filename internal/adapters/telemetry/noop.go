// Package telemetry provides progress recording adapters.
package telemetry

import (
	"context"

	"go.trai.ch/yarnix/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new no-op telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return noOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Complete(_ error) {}
