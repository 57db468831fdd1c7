package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/mantra/branch"
	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("GitHub issue branch", func(t *testing.T) {
		name := "issue/feature-123/add-auth"
		s, l := newTestStore(t, &fakeGit{branch: name})

		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)

		assert.Equal(t, name, res.Branch)
		assert.Equal(t, branch.Parse(name), res.Descriptor)
		assert.Equal(t, filepath.Join(l.SessionsDir(), "123-add-auth.md"), res.SessionPath)
		assert.Equal(t, filepath.Join(l.BranchesDir(), "issue-feature-123-add-auth"), res.MetaPath)

		content := testutil.ReadFile(t, res.SessionPath)
		assert.Contains(t, content, "# Session: add-auth")
		assert.Contains(t, content, "- **Issue**: #123")
		assert.Contains(t, content, "2026-03-14")

		meta := testutil.ReadFile(t, res.MetaPath)
		assert.Contains(t, meta, "branch: issue/feature-123/add-auth\n")
		assert.Contains(t, meta, "session: 123-add-auth.md\n")
		assert.Contains(t, meta, "status: in-progress\n")
		assert.Contains(t, meta, "created: 2026-03-14\n")
		assert.Contains(t, meta, "issue: 123\n")
		assert.Contains(t, meta, "parent: main\n")

		_, err = os.Stat(l.TemplatesDir())
		assert.NoError(t, err)
	})

	t.Run("simple chore branch", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "chore/update-deps"})

		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(l.SessionsDir(), "chore-update-deps.md"), res.SessionPath)
		assert.NotContains(t, testutil.ReadFile(t, res.SessionPath), "**Issue**")
		assert.NotContains(t, testutil.ReadFile(t, res.MetaPath), "issue:")
	})

	t.Run("Jira branch", func(t *testing.T) {
		s, _ := newTestStore(t, &fakeGit{branch: "feature/PROJ-42/billing"})

		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)
		assert.Equal(t, "PROJ-42-billing.md", filepath.Base(res.SessionPath))
		assert.Contains(t, testutil.ReadFile(t, res.SessionPath), "- **Issue**: PROJ-42")
	})

	t.Run("nested simple description", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "fix/parser/edge-case"})

		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(l.SessionsDir(), "fix-parser", "edge-case.md"), res.SessionPath)
		assert.FileExists(t, res.SessionPath)
	})

	t.Run("uses template when present", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "chore/deps"})
		testutil.WriteFile(t, l.Root, ".claude/templates/chore.md",
			"# {{type}}: {{description}} on {{branch}} ({{issueId}}) {{date}}\n")

		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)
		assert.Equal(t, "# chore: deps on chore/deps (N/A) 2026-03-14\n", testutil.ReadFile(t, res.SessionPath))
	})
}

func TestCreateFailures(t *testing.T) {
	t.Run("not a git repository", func(t *testing.T) {
		s, l := newTestStore(t, noRepo())

		_, err := s.Create(context.Background(), CreateOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeNotGitRepo))

		_, statErr := os.Stat(l.ClaudeDir())
		assert.True(t, os.IsNotExist(statErr))
	})

	for _, name := range []string{"main", "master"} {
		t.Run("protected "+name, func(t *testing.T) {
			s, l := newTestStore(t, &fakeGit{branch: name})

			_, err := s.Create(context.Background(), CreateOptions{Force: true})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeProtectedBranch))
			assert.False(t, s.Exists(name))

			// Pre-existing files for the branch do not change the outcome.
			testutil.WriteFile(t, l.Root, ".claude/sessions/"+name+".md", "x")
			_, err = s.Create(context.Background(), CreateOptions{})
			assert.True(t, errors.Is(err, errors.ErrCodeProtectedBranch))
		})
	}

	t.Run("configured protected patterns", func(t *testing.T) {
		s, err := NewStore(Options{
			Layout:            NewLayout(t.TempDir()),
			Git:               &fakeGit{branch: "release/1.2"},
			ProtectedBranches: []string{"release/*"},
		})
		require.NoError(t, err)

		_, err = s.Create(context.Background(), CreateOptions{})
		assert.True(t, errors.Is(err, errors.ErrCodeProtectedBranch))
	})
}

func TestCreateExistingSession(t *testing.T) {
	name := "issue/fix-7/crash"

	t.Run("refuses without force", func(t *testing.T) {
		s, _ := newTestStore(t, &fakeGit{branch: name})
		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(res.SessionPath, []byte("my notes"), 0644))
		require.NoError(t, os.WriteFile(res.MetaPath, []byte("status: done\n"), 0644))

		_, err = s.Create(context.Background(), CreateOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeSessionExists))

		assert.Equal(t, "my notes", testutil.ReadFile(t, res.SessionPath))
		assert.Equal(t, "status: done\n", testutil.ReadFile(t, res.MetaPath))
	})

	t.Run("metadata alone blocks creation", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: name})
		testutil.WriteFile(t, l.Root, ".claude/branches/issue-fix-7-crash", "status: done\n")

		_, err := s.Create(context.Background(), CreateOptions{})
		assert.True(t, errors.Is(err, errors.ErrCodeSessionExists))
		assert.NoFileExists(t, l.SessionPath(name))
	})

	t.Run("force overwrites both files", func(t *testing.T) {
		s, _ := newTestStore(t, &fakeGit{branch: name})
		res, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)
		fresh := testutil.ReadFile(t, res.SessionPath)
		freshMeta := testutil.ReadFile(t, res.MetaPath)

		require.NoError(t, os.WriteFile(res.SessionPath, []byte("my notes"), 0644))
		require.NoError(t, os.WriteFile(res.MetaPath, []byte("status: done\n"), 0644))

		_, err = s.Create(context.Background(), CreateOptions{Force: true})
		require.NoError(t, err)

		assert.Equal(t, fresh, testutil.ReadFile(t, res.SessionPath))
		assert.Equal(t, freshMeta, testutil.ReadFile(t, res.MetaPath))
	})
}

func TestGet(t *testing.T) {
	t.Run("after create", func(t *testing.T) {
		name := "issue/feature-123/add-auth"
		s, l := newTestStore(t, &fakeGit{branch: name})
		_, err := s.Create(context.Background(), CreateOptions{})
		require.NoError(t, err)

		info, err := s.Get(context.Background())
		require.NoError(t, err)

		d := branch.Parse(name)
		assert.Equal(t, name, info.Branch)
		assert.Equal(t, filepath.Join(l.SessionsDir(), d.SessionFile), info.SessionFile)
		require.NotNil(t, info.MetaFile)
		assert.Equal(t, filepath.Join(l.BranchesDir(), d.BranchMetaFile), *info.MetaFile)
		assert.Equal(t, "in-progress", info.Status)
		assert.Equal(t, string(d.Type), info.Type)
		require.NotNil(t, info.IssueID)
		assert.Equal(t, "#123", *info.IssueID)
		assert.Equal(t, "github", info.Platform)
	})

	t.Run("metadata session field is authoritative", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "feature/login"})
		testutil.WriteFile(t, l.Root, ".claude/branches/feature-login", "session: legacy-login.md\nstatus: review\n")
		testutil.WriteFile(t, l.Root, ".claude/sessions/legacy-login.md", "# legacy\n")
		testutil.WriteFile(t, l.Root, ".claude/sessions/feature-login.md", "# guessed\n")

		info, err := s.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(l.SessionsDir(), "legacy-login.md"), info.SessionFile)
		assert.Equal(t, "review", info.Status)
		assert.Nil(t, info.IssueID)
	})

	t.Run("metadata pointing at a missing file", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "feature/login"})
		testutil.WriteFile(t, l.Root, ".claude/branches/feature-login", "session: gone.md\n")
		testutil.WriteFile(t, l.Root, ".claude/sessions/feature-login.md", "# guessed\n")

		_, err := s.Get(context.Background())
		assert.True(t, errors.Is(err, errors.ErrCodeSessionNotFound))
	})

	t.Run("metadata without session field falls back to guessed path", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "feature/login"})
		testutil.WriteFile(t, l.Root, ".claude/branches/feature-login", "status: paused\n")
		testutil.WriteFile(t, l.Root, ".claude/sessions/feature-login.md", "# guessed\n")

		info, err := s.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(l.SessionsDir(), "feature-login.md"), info.SessionFile)
		assert.Equal(t, "paused", info.Status)
	})

	t.Run("session without metadata", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "wip"})
		testutil.WriteFile(t, l.Root, ".claude/sessions/wip.md", "# wip\n")

		info, err := s.Get(context.Background())
		require.NoError(t, err)
		assert.Nil(t, info.MetaFile)
		assert.Equal(t, "unknown", info.Status)
		assert.Equal(t, "unknown", info.Platform)
	})

	t.Run("no session", func(t *testing.T) {
		s, l := newTestStore(t, &fakeGit{branch: "feature/nothing"})

		_, err := s.Get(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeSessionNotFound))

		mErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, "feature/nothing", mErr.DetailString("branch"))
		assert.Equal(t, filepath.Join(l.SessionsDir(), "feature-nothing.md"), mErr.DetailString("expected"))
	})

	t.Run("not a git repository", func(t *testing.T) {
		s, _ := newTestStore(t, noRepo())
		_, err := s.Get(context.Background())
		assert.True(t, errors.Is(err, errors.ErrCodeNotGitRepo))
	})
}

func TestExistsAndReadMeta(t *testing.T) {
	name := "fix/ABC-1/thing"
	s, l := newTestStore(t, &fakeGit{branch: name})

	assert.False(t, s.Exists(name))
	_, ok := s.ReadMeta(name)
	assert.False(t, ok)

	testutil.WriteFile(t, l.Root, ".claude/sessions/ABC-1-thing.md", "x")
	assert.True(t, s.Exists(name))

	testutil.WriteFile(t, l.Root, ".claude/branches/fix-ABC-1-thing", "status: done\n")
	meta, ok := s.ReadMeta(name)
	require.True(t, ok)
	assert.Equal(t, "done", meta.Status())

	other := "fix/ABC-2/other"
	testutil.WriteFile(t, l.Root, ".claude/branches/fix-ABC-2-other", "status: done\n")
	assert.True(t, s.Exists(other))
}

func TestNewStoreRejectsBadPatterns(t *testing.T) {
	_, err := NewStore(Options{ProtectedBranches: []string{"["}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}
