// Package session manages per-branch session logs and branch metadata files.
//
// All locations are rooted at an explicit working directory:
//
//	<root>/.claude/sessions/<session file>   markdown session log
//	<root>/.claude/branches/<meta file>      key: value branch metadata
//	<root>/.claude/templates/<type>.md       optional session templates
//
// The Store resolves the current branch through a git.BranchProvider, so tests
// can run without a repository.
package session
