package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yarnix/internal/adapters/telemetry"
	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports/mocks"
	"go.trai.ch/yarnix/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type reconcilerTestMocks struct {
	fetcher  *mocks.MockArtifactFetcher
	resolver *mocks.MockCommitResolver
}

func setup(t *testing.T) (*reconciler.Reconciler, reconcilerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reconcilerTestMocks{
		fetcher:  mocks.NewMockArtifactFetcher(ctrl),
		resolver: mocks.NewMockCommitResolver(ctrl),
	}
	return reconciler.New(m.fetcher, m.resolver), m
}

func lockWith(entries ...*domain.Entry) *domain.Lockfile {
	l := domain.NewLockfile()
	for _, e := range entries {
		l.Add(e)
	}
	return l
}

func TestReconcile_FullyHashedIsUntouched(t *testing.T) {
	r, _ := setup(t)

	lock := lockWith(
		&domain.Entry{Keys: []string{"a@^1.0.0"}, Resolved: "https://x/a-1.0.0.tgz#abc"},
		&domain.Entry{Keys: []string{"g@^1.0.0"}, Resolved: "git+https://x/repo.git#deadbeef", Sha256: "cached"},
		&domain.Entry{Keys: []string{"local@link:.."}},
	)
	baseline := lockWith(
		&domain.Entry{Keys: []string{"a@^1.0.0"}, Resolved: "https://x/a-1.0.0.tgz#abc"},
		&domain.Entry{Keys: []string{"g@^1.0.0"}, Resolved: "git+https://x/repo.git#deadbeef", Sha256: "cached"},
		&domain.Entry{Keys: []string{"local@link:.."}},
	)

	// No fetcher or resolver expectations: any call would fail the test.
	require.NoError(t, r.Reconcile(context.Background(), lock, telemetry.NewNoOp()))
	assert.True(t, lock.Equal(baseline), "fully hashed lockfile must come back deep-equal")
}

func TestReconcile_MissingHashIsFetched(t *testing.T) {
	r, m := setup(t)

	lock := lockWith(&domain.Entry{
		Keys:     []string{"a@^1.0.0"},
		Resolved: "https://example.com/a-1.0.0.tgz",
	})

	m.fetcher.EXPECT().
		FetchSHA1(gomock.Any(), "https://example.com/a-1.0.0.tgz").
		Return("cafebabe", nil)

	require.NoError(t, r.Reconcile(context.Background(), lock, telemetry.NewNoOp()))
	assert.Equal(t, "https://example.com/a-1.0.0.tgz#cafebabe", lock.Entries()[0].Resolved)
}

func TestReconcile_GitRevisionIsResolved(t *testing.T) {
	r, m := setup(t)

	lock := lockWith(&domain.Entry{
		Keys:     []string{"g@^1.0.0"},
		Resolved: "git+https://example.com/repo.git#deadbeef",
	})

	// The git+ prefix is stripped before the tool sees the URL.
	m.resolver.EXPECT().
		ResolveSHA256(gomock.Any(), "https://example.com/repo.git", "deadbeef").
		Return("treehash", nil)

	require.NoError(t, r.Reconcile(context.Background(), lock, telemetry.NewNoOp()))

	entry := lock.Entries()[0]
	assert.Equal(t, "treehash", entry.Sha256)
	assert.Equal(t, "git+https://example.com/repo.git#deadbeef", entry.Resolved,
		"resolved field must not change for git entries")
}

func TestReconcile_FetchFailureAbortsRun(t *testing.T) {
	r, m := setup(t)

	lock := lockWith(&domain.Entry{
		Keys:     []string{"a@^1.0.0"},
		Resolved: "https://example.com/a-1.0.0.tgz",
	})

	m.fetcher.EXPECT().
		FetchSHA1(gomock.Any(), gomock.Any()).
		Return("", zerr.New("boom"))

	err := r.Reconcile(context.Background(), lock, telemetry.NewNoOp())
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, "https://example.com/a-1.0.0.tgz", lock.Entries()[0].Resolved,
		"failed entry must be left as it was")
}

func TestReconcile_RecordsProgressPerEntry(t *testing.T) {
	r, m := setup(t)
	ctrl := gomock.NewController(t)

	lock := lockWith(&domain.Entry{
		Keys:     []string{"a@^1.0.0"},
		Resolved: "https://example.com/a-1.0.0.tgz",
	})

	m.fetcher.EXPECT().FetchSHA1(gomock.Any(), gomock.Any()).Return("abc", nil)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(nil)

	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Record(gomock.Any(), "fetch https://example.com/a-1.0.0.tgz").Return(vertex)

	require.NoError(t, r.Reconcile(context.Background(), lock, tel))
}
