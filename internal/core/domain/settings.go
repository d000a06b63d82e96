package domain

// Settings are the run options for a conversion. Values come from the
// optional project config file and are overridden by command-line flags.
type Settings struct {
	// LockfilePath is the lockfile to read and, if patched, rewrite.
	LockfilePath string

	// NoNix suppresses catalog emission to standard output.
	NoNix bool

	// NoPatch aborts the run instead of rewriting a changed lockfile.
	NoPatch bool

	// Progress enables live per-entry progress during reconciliation.
	Progress bool
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{LockfilePath: "./yarn.lock"}
}
