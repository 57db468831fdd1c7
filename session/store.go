package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/grovetools/mantra/branch"
	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/git"
	"github.com/sirupsen/logrus"
)

// DefaultParentBranch is recorded as the parent of new sessions.
const DefaultParentBranch = "main"

// Options configures a Store.
type Options struct {
	Layout Layout
	Git    git.BranchProvider
	// Now defaults to time.Now.
	Now func() time.Time
	// Logger defaults to a discarding logger.
	Logger            *logrus.Entry
	ProtectedBranches []string
	ParentBranch      string
}

// Store creates and resolves the session files of the current branch.
type Store struct {
	layout Layout
	git    git.BranchProvider
	now    func() time.Time
	logger *logrus.Entry
	guard  *BranchGuard
	parent string
}

// NewStore builds a Store from opts.
func NewStore(opts Options) (*Store, error) {
	guard, err := NewBranchGuard(opts.ProtectedBranches)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid protected_branches")
	}

	s := &Store{
		layout: opts.Layout,
		git:    opts.Git,
		now:    opts.Now,
		logger: opts.Logger,
		guard:  guard,
		parent: opts.ParentBranch,
	}
	if s.git == nil {
		s.git = git.NewCLIRepository()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.logger = logrus.NewEntry(l)
	}
	if s.parent == "" {
		s.parent = DefaultParentBranch
	}
	return s, nil
}

// Layout returns the store's path layout.
func (s *Store) Layout() Layout {
	return s.layout
}

// CreateOptions controls Create.
type CreateOptions struct {
	// Force overwrites both files of an existing session.
	Force bool
}

// CreateResult describes a newly written session.
type CreateResult struct {
	Branch      string            `json:"branch"`
	Descriptor  branch.Descriptor `json:"descriptor"`
	SessionPath string            `json:"sessionPath"`
	MetaPath    string            `json:"metaPath"`
}

// Create writes the session log and branch metadata for the current branch.
func (s *Store) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	branchName, err := s.currentBranch(ctx)
	if err != nil {
		return nil, err
	}

	if s.guard.IsProtected(branchName) {
		return nil, errors.ProtectedBranch(branchName)
	}

	d := branch.Parse(branchName)
	sessionPath := filepath.Join(s.layout.SessionsDir(), d.SessionFile)
	metaPath := filepath.Join(s.layout.BranchesDir(), d.BranchMetaFile)

	if (fileExists(sessionPath) || fileExists(metaPath)) && !opts.Force {
		return nil, errors.SessionExists(branchName, sessionPath, metaPath)
	}

	if err := s.layout.EnsureDirs(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create session directories")
	}
	// Simple-form descriptions may contain "/", placing the file in a subdirectory.
	if err := os.MkdirAll(filepath.Dir(sessionPath), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create session directory")
	}

	date := s.now().UTC().Format(DateLayout)
	vars := VarsFor(d, branchName, date)

	content, ok := s.layout.LoadTemplate(string(d.Type))
	if ok {
		s.logger.WithField("type", d.Type).Debug("Rendering session from template")
		content = Render(content, vars)
	} else {
		s.logger.WithField("type", d.Type).Debug("No template found, using default")
		content = DefaultTemplate(vars)
	}

	meta := RenderMetadata(MetadataFields{
		Branch:     branchName,
		Descriptor: d,
		Date:       date,
		Parent:     s.parent,
	})

	if err := os.WriteFile(sessionPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to write session file").
			WithDetail("path", sessionPath)
	}
	if err := os.WriteFile(metaPath, []byte(meta), 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to write branch metadata").
			WithDetail("path", metaPath)
	}

	s.logger.WithFields(logrus.Fields{
		"branch":  branchName,
		"session": sessionPath,
		"force":   opts.Force,
	}).Info("Session created")

	return &CreateResult{
		Branch:      branchName,
		Descriptor:  d,
		SessionPath: sessionPath,
		MetaPath:    metaPath,
	}, nil
}

// Info describes the session resolved for the current branch.
type Info struct {
	Branch      string  `json:"branch"`
	SessionFile string  `json:"sessionFile"`
	MetaFile    *string `json:"metaFile"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	IssueID     *string `json:"issueId"`
	Platform    string  `json:"platform"`
}

// Get resolves the session of the current branch. The metadata file's
// session field takes precedence over the file name derived from the branch.
func (s *Store) Get(ctx context.Context) (*Info, error) {
	branchName, err := s.currentBranch(ctx)
	if err != nil {
		return nil, err
	}

	d := branch.Parse(branchName)
	guessed := filepath.Join(s.layout.SessionsDir(), d.SessionFile)
	metaPath := filepath.Join(s.layout.BranchesDir(), d.BranchMetaFile)

	var meta Metadata
	sessionFile := ""
	if fileExists(metaPath) {
		if m, ok := ReadMetadataFile(metaPath); ok {
			meta = m
			if name := m.Session(); name != "" {
				sessionFile = filepath.Join(s.layout.SessionsDir(), name)
			}
		}
	}
	if sessionFile == "" && fileExists(guessed) {
		sessionFile = guessed
	}

	if sessionFile == "" || !fileExists(sessionFile) {
		s.logger.WithField("branch", branchName).Debug("No session file resolved")
		return nil, errors.SessionNotFound(branchName, guessed)
	}

	info := &Info{
		Branch:      branchName,
		SessionFile: sessionFile,
		Status:      "unknown",
		Type:        string(d.Type),
		Platform:    string(d.Platform),
	}
	if fileExists(metaPath) {
		info.MetaFile = &metaPath
	}
	if status := meta.Status(); status != "" {
		info.Status = status
	}
	if d.IssueID != "" {
		id := d.IssueID
		info.IssueID = &id
	}
	return info, nil
}

// ReadMeta returns the parsed metadata of a branch, or ok=false if the file
// is missing or unreadable.
func (s *Store) ReadMeta(branchName string) (Metadata, bool) {
	return ReadMetadataFile(s.layout.MetaPath(branchName))
}

// Exists reports whether the branch has a session file or a metadata file.
func (s *Store) Exists(branchName string) bool {
	return fileExists(s.layout.SessionPath(branchName)) || fileExists(s.layout.MetaPath(branchName))
}

func (s *Store) currentBranch(ctx context.Context) (string, error) {
	name, err := s.git.CurrentBranch(ctx, s.layout.Root)
	if err != nil || name == "" {
		s.logger.WithError(err).WithField("dir", s.layout.Root).Debug("Could not resolve current branch")
		if err == nil {
			err = fmt.Errorf("empty branch name")
		}
		return "", errors.NotGitRepo(s.layout.Root, err)
	}
	s.logger.WithField("branch", name).Debug("Resolved current branch")
	return name, nil
}
