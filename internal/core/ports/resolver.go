package ports

import "context"

// CommitResolver resolves a repository revision to a content hash of the
// fetched source tree, via an external tool.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CommitResolver interface {
	// ResolveSHA256 returns the sha256 of the tree at the given revision of
	// the repository. Tool failure or unparsable output yields
	// domain.ErrPrefetchFailed.
	ResolveSHA256(ctx context.Context, repoURL, rev string) (string, error)
}
