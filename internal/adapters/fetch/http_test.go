package fetch_test

import (
	"context"
	"crypto/sha1" //nolint:gosec // mirrors the digest under test
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yarnix/internal/adapters/fetch"
)

func TestHTTPFetcher_FetchSHA1(t *testing.T) {
	body := []byte("tarball bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	fetcher := fetch.NewWithClient(server.Client())

	digest, err := fetcher.FetchSHA1(context.Background(), server.URL+"/a-1.0.0.tgz")
	require.NoError(t, err)

	sum := sha1.Sum(body) //nolint:gosec // see import note
	assert.Equal(t, hex.EncodeToString(sum[:]), digest)
}

func TestHTTPFetcher_FetchSHA1_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := fetch.NewWithClient(server.Client())

	_, err := fetcher.FetchSHA1(context.Background(), server.URL+"/missing.tgz")
	require.Error(t, err)
	assert.ErrorContains(t, err, "artifact fetch failed")
}

func TestHTTPFetcher_FetchSHA1_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := fetch.New()

	_, err := fetcher.FetchSHA1(context.Background(), url+"/a.tgz")
	require.Error(t, err)
	assert.ErrorContains(t, err, "artifact fetch failed")
}

func TestHTTPFetcher_FetchSHA1_BadURL(t *testing.T) {
	fetcher := fetch.New()

	_, err := fetcher.FetchSHA1(context.Background(), "://not-a-url")
	require.Error(t, err)
}
