package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileParse is returned when the lockfile content is not a
	// well-formed yarn v1 lockfile.
	ErrLockfileParse = zerr.New("lockfile is not well-formed")

	// ErrFetchFailed is returned when a network fetch fails or returns a
	// non-success status.
	ErrFetchFailed = zerr.New("artifact fetch failed")

	// ErrPrefetchFailed is returned when the commit-hash resolution tool
	// fails or produces unparsable output.
	ErrPrefetchFailed = zerr.New("commit hash resolution failed")

	// ErrPatchBlocked is returned when reconciliation changed the lockfile
	// but patching was disabled. User-actionable, not an internal defect.
	ErrPatchBlocked = zerr.New("lockfile needs patching but patching is disabled")

	// ErrMissingSHA256 is returned when a source-control entry reaches the
	// catalog builder without a reconciled sha256.
	ErrMissingSHA256 = zerr.New("source-control entry has no sha256")
)
