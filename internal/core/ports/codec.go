package ports

import "go.trai.ch/yarnix/internal/core/domain"

// LockfileCodec parses and serializes yarn v1 lockfiles.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type LockfileCodec interface {
	// Parse turns raw lockfile bytes into the ordered in-memory form.
	// Malformed input yields domain.ErrLockfileParse.
	Parse(data []byte) (*domain.Lockfile, error)

	// Serialize renders the lockfile back into the yarn v1 text format.
	// Serialize followed by Parse is the identity on the in-memory form.
	Serialize(lock *domain.Lockfile) []byte
}
