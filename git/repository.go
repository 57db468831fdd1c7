package git

import (
	"context"

	"github.com/grovetools/mantra/command"
)

// CLIRepository implements RepositoryProvider using the git CLI
type CLIRepository struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interface
var _ RepositoryProvider = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{
		cmdBuilder: command.NewSafeBuilder(),
	}
}

// NewCLIRepositoryWithBuilder creates a CLI repository provider over a custom builder
func NewCLIRepositoryWithBuilder(sb *command.SafeBuilder) *CLIRepository {
	return &CLIRepository{cmdBuilder: sb}
}

// CurrentBranch returns the abbreviated name of HEAD in dir
func (r *CLIRepository) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return currentBranch(ctx, r.cmdBuilder, dir)
}

// IsGitRepo checks if a directory is a git repository
func (r *CLIRepository) IsGitRepo(ctx context.Context, dir string) bool {
	_, err := output(ctx, r.cmdBuilder, dir, "rev-parse", "--git-dir")
	return err == nil
}

