package ports

import "context"

// ArtifactFetcher retrieves an artifact over the network and digests it.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ArtifactFetcher interface {
	// FetchSHA1 downloads the resource at url and returns the hex SHA-1
	// digest of the response body. The body is digested incrementally,
	// never buffered in full. Transport errors and non-success statuses
	// yield domain.ErrFetchFailed.
	FetchSHA1(ctx context.Context, url string) (string, error)
}
