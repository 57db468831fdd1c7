package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/grovetools/mantra/testutil"
	"github.com/stretchr/testify/require"
)

type fakeGit struct {
	branch string
	err    error
}

func (f *fakeGit) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return f.branch, f.err
}

func noRepo() *fakeGit {
	return &fakeGit{err: fmt.Errorf("fatal: not a git repository")}
}

func newTestStore(t *testing.T, g *fakeGit) (*Store, Layout) {
	t.Helper()
	layout := NewLayout(t.TempDir())
	s, err := NewStore(Options{
		Layout: layout,
		Git:    g,
		Now:    testutil.FixedClock(2026, time.March, 14),
	})
	require.NoError(t, err)
	return s, layout
}
