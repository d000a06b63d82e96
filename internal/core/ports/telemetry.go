package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records per-entry progress during reconciliation.
type Telemetry interface {
	// Record starts recording a unit of work identified by name.
	Record(ctx context.Context, name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
