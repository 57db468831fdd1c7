package session

import (
	"fmt"
	"path/filepath"

	"github.com/moby/patternmatcher"
)

// DefaultProtectedBranches are the branches sessions may never be created on.
var DefaultProtectedBranches = []string{"main", "master"}

// BranchGuard decides whether a branch is protected. Patterns use
// .dockerignore syntax: "release/*", "**/wip", and "!" exclusions, with the
// last matching pattern winning.
type BranchGuard struct {
	pm *patternmatcher.PatternMatcher
}

// NewBranchGuard compiles patterns, falling back to DefaultProtectedBranches
// when none are given.
func NewBranchGuard(patterns []string) (*BranchGuard, error) {
	if len(patterns) == 0 {
		patterns = DefaultProtectedBranches
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid protected branch patterns: %w", err)
	}
	return &BranchGuard{pm: pm}, nil
}

// IsProtected reports whether the whole branch name matches the guard's
// patterns. "main" does not cover "main/experiment"; use "release/**" to cover
// nested names.
func (g *BranchGuard) IsProtected(branchName string) bool {
	match, _, err := g.pm.MatchesUsingParentResults(filepath.FromSlash(branchName), patternmatcher.MatchInfo{})
	if err != nil {
		return false
	}
	return match
}
