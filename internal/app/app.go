// Package app implements the application layer for yarnix.
package app

import (
	"context"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/yarnix/internal/adapters/nix"
	"go.trai.ch/yarnix/internal/catalog"
	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/yarnix/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic: lockfile in, reconciled
// lockfile plus fetch catalog out.
type App struct {
	codec      ports.LockfileCodec
	reconciler *reconciler.Reconciler
	logger     ports.Logger
	telemetry  ports.Telemetry
	out        io.Writer
}

// New creates a new App instance. The catalog is written to stdout unless
// redirected with SetOutput.
func New(codec ports.LockfileCodec, rec *reconciler.Reconciler, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		codec:      codec,
		reconciler: rec,
		logger:     logger,
		telemetry:  telemetry,
		out:        os.Stdout,
	}
}

// SetOutput redirects catalog emission. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetTelemetry replaces the progress recorder, e.g. when --progress selects
// the live one.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// Run performs one conversion: parse the lockfile, reconcile missing hashes,
// write the lockfile back if reconciliation changed it, then emit the fetch
// catalog. The lockfile write is the only persisted side effect.
func (a *App) Run(ctx context.Context, settings domain.Settings) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	data, err := os.ReadFile(settings.LockfilePath) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, "failed to read lockfile")
	}

	lock, err := a.codec.Parse(data)
	if err != nil {
		return zerr.Wrap(err, "failed to parse lockfile")
	}
	// A second parse of the same bytes gives the pristine baseline the
	// reconciled structure is diffed against.
	original, err := a.codec.Parse(data)
	if err != nil {
		return zerr.Wrap(err, "failed to parse lockfile")
	}

	if err := a.reconciler.Reconcile(ctx, lock, a.telemetry); err != nil {
		return zerr.Wrap(err, "reconciliation failed")
	}

	if a.changed(lock, original) {
		if settings.NoPatch {
			a.logger.Warn("lockfile is out of date but patching is disabled")
			return zerr.With(domain.ErrPatchBlocked, "lockfile", settings.LockfilePath)
		}
		if err := a.patch(settings.LockfilePath, lock); err != nil {
			return err
		}
	}

	if settings.NoNix {
		return nil
	}

	descriptors, err := catalog.Build(lock)
	if err != nil {
		return zerr.Wrap(err, "failed to build catalog")
	}
	if _, err := io.WriteString(a.out, nix.Render(descriptors)); err != nil {
		return zerr.Wrap(err, "failed to emit catalog")
	}

	return nil
}

// changed detects a reconciliation diff by digesting the canonical
// serialization of both structures.
func (a *App) changed(lock, original *domain.Lockfile) bool {
	return xxhash.Sum64(a.codec.Serialize(lock)) != xxhash.Sum64(a.codec.Serialize(original))
}

// patch writes the reconciled lockfile back to its original path.
func (a *App) patch(path string, lock *domain.Lockfile) error {
	//nolint:gosec // the lockfile is a user project file, keep it readable
	if err := os.WriteFile(path, a.codec.Serialize(lock), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}
	a.logger.Info("lockfile patched: " + path)
	return nil
}
