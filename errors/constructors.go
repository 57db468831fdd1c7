package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *MantraError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *MantraError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *MantraError {
	mErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		mErr = mErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return mErr
}

// NotGitRepo creates an error for a directory where git reports no branch
func NotGitRepo(dir string, cause error) *MantraError {
	return Wrap(cause, ErrCodeNotGitRepo, "not in a git repository").
		WithDetail("dir", dir)
}

// ProtectedBranch creates an error for session creation on a protected branch
func ProtectedBranch(branch string) *MantraError {
	return New(ErrCodeProtectedBranch, fmt.Sprintf("cannot create session on protected branch '%s'", branch)).
		WithDetail("branch", branch)
}

// SessionExists creates an error for a branch that already has session files
func SessionExists(branch, sessionPath, metaPath string) *MantraError {
	return New(ErrCodeSessionExists, fmt.Sprintf("session already exists for branch '%s'", branch)).
		WithDetail("branch", branch).
		WithDetail("session", sessionPath).
		WithDetail("metadata", metaPath)
}

// SessionNotFound creates an error for a branch with no resolvable session file
func SessionNotFound(branch, expectedPath string) *MantraError {
	return New(ErrCodeSessionNotFound, fmt.Sprintf("no session found for branch '%s'", branch)).
		WithDetail("branch", branch).
		WithDetail("expected", expectedPath)
}
