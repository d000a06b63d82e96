// Package fetch implements the network artifact fetcher.
package fetch

import (
	"context"
	"crypto/sha1" //nolint:gosec // yarn lockfiles pin plain URLs by SHA-1
	"encoding/hex"
	"io"
	"net/http"

	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher implements ports.ArtifactFetcher over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates a fetcher using the default HTTP client. No timeout is imposed
// here; the transport's own behavior applies.
func New() *HTTPFetcher {
	return NewWithClient(http.DefaultClient)
}

// NewWithClient creates a fetcher using the given HTTP client.
func NewWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// FetchSHA1 downloads the resource at url and returns the hex SHA-1 digest
// of the response body, streaming it through the hash without buffering.
func (f *HTTPFetcher) FetchSHA1(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := zerr.With(domain.ErrFetchFailed, "url", url)
		return "", zerr.With(fetchErr, "status", resp.Status)
	}

	h := sha1.New() //nolint:gosec // see package import note
	if _, err := io.Copy(h, resp.Body); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
