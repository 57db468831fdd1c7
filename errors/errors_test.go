package errors

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMantraError(t *testing.T) {
	err := New(ErrCodeSessionNotFound, "session not found")
	assert.Equal(t, ErrCodeSessionNotFound, err.Code)

	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.True(t, Is(wrapped, ErrCodeCommandFailed))
	assert.False(t, Is(wrapped, ErrCodeSessionNotFound))

	detailed := err.WithDetail("branch", "feature/x").WithDetail("count", 3)
	assert.Equal(t, "feature/x", detailed.DetailString("branch"))
	assert.Equal(t, "3", detailed.DetailString("count"))
	assert.Equal(t, "", detailed.DetailString("missing"))
}

func TestIsThroughFmtWrap(t *testing.T) {
	inner := ProtectedBranch("main")
	outer := fmt.Errorf("create: %w", inner)

	assert.True(t, Is(outer, ErrCodeProtectedBranch))
	assert.Equal(t, ErrCodeProtectedBranch, GetCode(outer))

	mErr, ok := As(outer)
	require.True(t, ok)
	assert.Equal(t, "main", mErr.DetailString("branch"))

	assert.Equal(t, ErrorCode(""), GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
	assert.False(t, Is(nil, ErrCodeInternal))
}

func TestQuiet(t *testing.T) {
	err := SessionNotFound("feature/x", "/tmp/x.md")
	assert.False(t, IsSilent(err))

	err.Quiet()
	assert.True(t, IsSilent(err))
	assert.True(t, IsSilent(fmt.Errorf("get: %w", err)))
	assert.False(t, IsSilent(fmt.Errorf("plain")))
}

func TestErrorConstructors(t *testing.T) {
	err := SessionExists("feature/x", "/s.md", "/m")
	assert.Equal(t, ErrCodeSessionExists, err.Code)
	assert.Equal(t, "/s.md", err.DetailString("session"))
	assert.Equal(t, "/m", err.DetailString("metadata"))

	err = NotGitRepo("/tmp", fmt.Errorf("exit status 128"))
	assert.Equal(t, ErrCodeNotGitRepo, err.Code)
	assert.Contains(t, err.Error(), "exit status 128")

	exitErr := exec.Command("false").Run()
	err = CommandFailed("false", exitErr)
	assert.Equal(t, ErrCodeCommandFailed, err.Code)
	if _, ok := exitErr.(*exec.ExitError); ok {
		assert.Equal(t, 1, err.Details["exitCode"])
	}
}

func TestToJSON(t *testing.T) {
	err := ConfigInvalid("refresh_interval must be positive").WithDetail("path", "/x/mantra.yml")
	out := err.ToJSON()
	assert.Contains(t, out, `"code": "CONFIG_INVALID"`)
	assert.Contains(t, out, `"path": "/x/mantra.yml"`)
}
