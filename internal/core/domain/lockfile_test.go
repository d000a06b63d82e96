package domain_test

import (
	"testing"

	"go.trai.ch/yarnix/internal/core/domain"
)

func makeLock(entries ...*domain.Entry) *domain.Lockfile {
	l := domain.NewLockfile()
	for _, e := range entries {
		l.Add(e)
	}
	return l
}

func TestLockfile_Equal(t *testing.T) {
	a := makeLock(
		&domain.Entry{Keys: []string{"a@^1.0.0"}, Version: "1.0.0", Resolved: "https://x/a.tgz#h1"},
		&domain.Entry{
			Keys:         []string{"b@^2.0.0"},
			Version:      "2.0.0",
			Resolved:     "https://x/b.tgz#h2",
			Dependencies: []domain.Dependency{{Name: "a", Range: "^1.0.0"}},
		},
	)
	b := makeLock(
		&domain.Entry{Keys: []string{"a@^1.0.0"}, Version: "1.0.0", Resolved: "https://x/a.tgz#h1"},
		&domain.Entry{
			Keys:         []string{"b@^2.0.0"},
			Version:      "2.0.0",
			Resolved:     "https://x/b.tgz#h2",
			Dependencies: []domain.Dependency{{Name: "a", Range: "^1.0.0"}},
		},
	)

	if !a.Equal(b) {
		t.Fatal("expected structurally identical lockfiles to be equal")
	}

	b.Entries()[1].Sha256 = "filled-in"
	if a.Equal(b) {
		t.Fatal("expected sha256 change to break equality")
	}
}

func TestLockfile_Equal_OrderMatters(t *testing.T) {
	e1 := &domain.Entry{Keys: []string{"a@1"}, Version: "1.0.0"}
	e2 := &domain.Entry{Keys: []string{"b@1"}, Version: "1.0.0"}

	if makeLock(e1, e2).Equal(makeLock(e2, e1)) {
		t.Fatal("expected entry order to affect equality")
	}
}

func TestLockfile_Equal_Nil(t *testing.T) {
	if makeLock().Equal(nil) {
		t.Fatal("expected lockfile not to equal nil")
	}
	e := &domain.Entry{Keys: []string{"a@1"}}
	if e.Equal(nil) {
		t.Fatal("expected entry not to equal nil")
	}
}
