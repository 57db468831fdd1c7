package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/mantra/command"
	"github.com/grovetools/mantra/errors"
)

// IsGitRepo checks if the given directory is inside a git repository
func IsGitRepo(dir string) bool {
	return NewCLIRepository().IsGitRepo(context.Background(), dir)
}

// currentBranch runs `git rev-parse --abbrev-ref HEAD`. A detached HEAD is
// reported as "HEAD".
func currentBranch(ctx context.Context, sb *command.SafeBuilder, dir string) (string, error) {
	branch, err := output(ctx, sb, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if branch == "" {
		return "", fmt.Errorf("git reported an empty branch name")
	}
	return branch, nil
}

// output runs git with args in dir and returns trimmed stdout.
func output(ctx context.Context, sb *command.SafeBuilder, dir string, args ...string) (string, error) {
	cmd, err := sb.Build(ctx, "git", args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	out, err := cmd.InDir(dir).Output()
	if err != nil {
		return "", errors.CommandFailed(cmd.String(), err).WithDetail("dir", dir)
	}
	return strings.TrimSpace(string(out)), nil
}
