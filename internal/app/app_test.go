package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yarnix/internal/adapters/telemetry"
	"go.trai.ch/yarnix/internal/adapters/yarnlock"
	"go.trai.ch/yarnix/internal/app"
	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports/mocks"
	"go.trai.ch/yarnix/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

const hashedLockfile = `# THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.
# yarn lockfile v1

left-pad@^1.0.0:
  version "1.0.5"
  resolved "https://registry.yarnpkg.com/left-pad/-/left-pad-1.0.5.tgz#abc123"

"sharedlib@git+https://example.com/sharedlib.git":
  version "2.0.0"
  resolved "git+https://example.com/sharedlib.git#deadbeef"
  sha256 treehash
`

const unhashedLockfile = `# THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.
# yarn lockfile v1

left-pad@^1.0.0:
  version "1.0.5"
  resolved "https://registry.yarnpkg.com/left-pad/-/left-pad-1.0.5.tgz"
`

type harness struct {
	app      *app.App
	fetcher  *mocks.MockArtifactFetcher
	resolver *mocks.MockCommitResolver
	logger   *mocks.MockLogger
	out      *bytes.Buffer
	path     string
}

func newHarness(t *testing.T, lockfile string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	path := filepath.Join(t.TempDir(), "yarn.lock")
	require.NoError(t, os.WriteFile(path, []byte(lockfile), 0o644))

	h := &harness{
		fetcher:  mocks.NewMockArtifactFetcher(ctrl),
		resolver: mocks.NewMockCommitResolver(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      &bytes.Buffer{},
		path:     path,
	}
	h.app = app.New(
		yarnlock.NewCodec(),
		reconciler.New(h.fetcher, h.resolver),
		h.logger,
		telemetry.NewNoOp(),
	)
	h.app.SetOutput(h.out)
	return h
}

func (h *harness) onDisk(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_HashedLockfileEmitsCatalog(t *testing.T) {
	h := newHarness(t, hashedLockfile)

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path})
	require.NoError(t, err)

	expected := `{ fetchgitTarball, fetchurl, linkFarm }:

linkFarm "offline" [
  {
    name = "left-pad-1.0.5.tgz";
    path = fetchurl {
      url = "https://registry.yarnpkg.com/left-pad/-/left-pad-1.0.5.tgz";
      sha1 = "abc123";
    };
  }
  {
    name = "sharedlib.git-deadbeef";
    path = fetchgitTarball {
      url = "https://example.com/sharedlib.git";
      rev = "deadbeef";
      sha256 = "treehash";
    };
  }
]
`
	assert.Equal(t, expected, h.out.String())
	assert.Equal(t, hashedLockfile, h.onDisk(t), "a fully hashed lockfile must not be rewritten")
}

func TestRun_MissingHashPatchesLockfile(t *testing.T) {
	h := newHarness(t, unhashedLockfile)
	h.fetcher.EXPECT().
		FetchSHA1(gomock.Any(), "https://registry.yarnpkg.com/left-pad/-/left-pad-1.0.5.tgz").
		Return("abc123", nil)
	h.logger.EXPECT().Info(gomock.Any())

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path})
	require.NoError(t, err)

	assert.Contains(t, h.onDisk(t), `resolved "https://registry.yarnpkg.com/left-pad/-/left-pad-1.0.5.tgz#abc123"`)
	assert.Contains(t, h.out.String(), `sha1 = "abc123";`)
}

func TestRun_NoPatchBlocksRewrite(t *testing.T) {
	h := newHarness(t, unhashedLockfile)
	h.fetcher.EXPECT().
		FetchSHA1(gomock.Any(), gomock.Any()).
		Return("abc123", nil)
	h.logger.EXPECT().Warn(gomock.Any())

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path, NoPatch: true})
	require.ErrorIs(t, err, domain.ErrPatchBlocked)

	assert.Equal(t, unhashedLockfile, h.onDisk(t), "the lockfile on disk must stay untouched")
	assert.Empty(t, h.out.String())
}

func TestRun_NoNixSkipsCatalog(t *testing.T) {
	h := newHarness(t, hashedLockfile)

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path, NoNix: true})
	require.NoError(t, err)

	assert.Empty(t, h.out.String())
}

func TestRun_MissingLockfile(t *testing.T) {
	h := newHarness(t, hashedLockfile)

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: filepath.Join(t.TempDir(), "nope.lock")})
	require.ErrorContains(t, err, "failed to read lockfile")
}

func TestRun_MalformedLockfile(t *testing.T) {
	h := newHarness(t, "  stray-indent before any entry\n")

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path})
	require.ErrorContains(t, err, "failed to parse lockfile")
}

func TestRun_ClosesTelemetryOnParseFailure(t *testing.T) {
	h := newHarness(t, "  stray-indent before any entry\n")
	tel := mocks.NewMockTelemetry(gomock.NewController(t))
	tel.EXPECT().Close().Return(nil)
	h.app.SetTelemetry(tel)

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path})
	require.ErrorContains(t, err, "failed to parse lockfile")
}

func TestRun_TelemetryCloseFailureIsLogged(t *testing.T) {
	h := newHarness(t, hashedLockfile)
	tel := mocks.NewMockTelemetry(gomock.NewController(t))
	tel.EXPECT().Close().Return(errors.New("flush failed"))
	h.app.SetTelemetry(tel)
	h.logger.EXPECT().Error(gomock.Any())

	err := h.app.Run(context.Background(), domain.Settings{LockfilePath: h.path, NoNix: true})
	require.NoError(t, err)
}
