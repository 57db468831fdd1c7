package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/mantra/branch"
)

const (
	claudeDirName    = ".claude"
	sessionsDirName  = "sessions"
	branchesDirName  = "branches"
	templatesDirName = "templates"
)

// Layout computes session-related paths under a root directory. It never
// walks up to find a repository root.
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// LayoutFromCwd returns a Layout rooted at the process working directory.
func LayoutFromCwd() (Layout, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Layout{}, fmt.Errorf("get current directory: %w", err)
	}
	return NewLayout(cwd), nil
}

// ClaudeDir returns <root>/.claude.
func (l Layout) ClaudeDir() string {
	return filepath.Join(l.Root, claudeDirName)
}

// SessionsDir returns <root>/.claude/sessions.
func (l Layout) SessionsDir() string {
	return filepath.Join(l.ClaudeDir(), sessionsDirName)
}

// BranchesDir returns <root>/.claude/branches.
func (l Layout) BranchesDir() string {
	return filepath.Join(l.ClaudeDir(), branchesDirName)
}

// TemplatesDir returns <root>/.claude/templates.
func (l Layout) TemplatesDir() string {
	return filepath.Join(l.ClaudeDir(), templatesDirName)
}

// SessionPath returns the session file path for a branch.
func (l Layout) SessionPath(branchName string) string {
	return filepath.Join(l.SessionsDir(), branch.Parse(branchName).SessionFile)
}

// MetaPath returns the branch metadata file path for a branch.
func (l Layout) MetaPath(branchName string) string {
	return filepath.Join(l.BranchesDir(), branch.Parse(branchName).BranchMetaFile)
}

// EnsureDirs creates the sessions, branches and templates directories.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.SessionsDir(), l.BranchesDir(), l.TemplatesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
