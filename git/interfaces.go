package git

import "context"

// BranchProvider reports the branch checked out in a directory.
type BranchProvider interface {
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// RepositoryProvider defines the interface for general git repository operations
type RepositoryProvider interface {
	BranchProvider
	IsGitRepo(ctx context.Context, dir string) bool
}
