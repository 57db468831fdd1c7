// Package cmd holds the cobra commands shared by the mantra binaries.
package cmd

import (
	"io"
	"os"
	"time"

	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/config"
	"github.com/grovetools/mantra/git"
	"github.com/grovetools/mantra/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Env carries the process-level dependencies of the commands. Zero fields
// resolve to the working directory, the git CLI, the wall clock and stdin.
type Env struct {
	Root  string
	Git   git.BranchProvider
	Now   func() time.Time
	Stdin io.Reader
}

func (e *Env) root() (string, error) {
	if e != nil && e.Root != "" {
		return e.Root, nil
	}
	return os.Getwd()
}

func (e *Env) stdin() io.Reader {
	if e != nil && e.Stdin != nil {
		return e.Stdin
	}
	return os.Stdin
}

// newStore builds a session store for the command's root directory using the
// loaded configuration.
func newStore(cmd *cobra.Command, env *Env, logger *logrus.Entry) (*session.Store, error) {
	root, err := env.root()
	if err != nil {
		return nil, err
	}

	cfg, err := cli.LoadConfig(cmd, root)
	if err != nil {
		return nil, err
	}

	opts := sessionOptions(cfg, session.NewLayout(root), logger)
	if env != nil {
		opts.Git = env.Git
		opts.Now = env.Now
	}
	return session.NewStore(opts)
}

// sessionOptions maps the configuration onto store options.
func sessionOptions(cfg *config.Config, layout session.Layout, logger *logrus.Entry) session.Options {
	return session.Options{
		Layout:            layout,
		Logger:            logger,
		ProtectedBranches: cfg.ProtectedBranches,
		ParentBranch:      cfg.ParentBranch,
	}
}
