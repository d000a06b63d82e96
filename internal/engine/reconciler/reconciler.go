// Package reconciler fills in missing integrity data on lockfile entries.
package reconciler

import (
	"context"
	"runtime"

	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Reconciler ensures every lockfile entry carries the integrity data the
// catalog builder needs.
type Reconciler struct {
	fetcher  ports.ArtifactFetcher
	resolver ports.CommitResolver
}

// New creates a new Reconciler.
func New(fetcher ports.ArtifactFetcher, resolver ports.CommitResolver) *Reconciler {
	return &Reconciler{
		fetcher:  fetcher,
		resolver: resolver,
	}
}

// Reconcile mutates entries in place, concurrently. Each task owns exactly
// one entry, so no synchronization is needed on the lockfile itself. The
// first failure cancels the group and is returned; there is no per-entry
// recovery or retry. Entries are never added, removed, or reordered.
// Progress is recorded per entry on the given telemetry.
func (r *Reconciler) Reconcile(ctx context.Context, lock *domain.Lockfile, telemetry ports.Telemetry) error {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range lock.Entries() {
		if entry.Resolved == "" {
			// Local or workspace dependency, left untouched.
			continue
		}
		g.Go(func() error {
			return r.reconcileEntry(groupCtx, entry, telemetry)
		})
	}

	return g.Wait()
}

func (r *Reconciler) reconcileEntry(ctx context.Context, entry *domain.Entry, telemetry ports.Telemetry) error {
	url, token := domain.SplitResolved(entry.Resolved)

	switch {
	case token == "":
		// No content hash at all: fetch the artifact and digest it.
		vertex := telemetry.Record(ctx, "fetch "+url)
		digest, err := r.fetcher.FetchSHA1(ctx, url)
		vertex.Complete(err)
		if err != nil {
			return zerr.With(err, "entry", firstKey(entry))
		}
		entry.Resolved = url + "#" + digest

	case domain.IsGitURL(url):
		// The token is a revision, not a content hash. The sha256 persisted
		// by an earlier run is the only cache there is; keep it.
		if entry.Sha256 != "" {
			return nil
		}
		vertex := telemetry.Record(ctx, "prefetch "+url)
		sha256, err := r.resolver.ResolveSHA256(ctx, domain.StripGitScheme(url), token)
		vertex.Complete(err)
		if err != nil {
			return zerr.With(err, "entry", firstKey(entry))
		}
		entry.Sha256 = sha256
	}

	return nil
}

func firstKey(entry *domain.Entry) string {
	if len(entry.Keys) == 0 {
		return ""
	}
	return entry.Keys[0]
}
