package cmd

import (
	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/git"
	"github.com/grovetools/mantra/logging"
	"github.com/grovetools/mantra/session"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the command that prepares the .claude directories and
// the starter session templates.
func NewInitCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the .claude session directories and starter templates",
		Long: `Creates .claude/sessions, .claude/branches and .claude/templates, and writes
feature.md, fix.md and chore.md templates. Existing templates are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd, "init")
			root, err := env.root()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to resolve working directory")
			}

			layout := session.NewLayout(root)
			created, err := layout.WriteStarterTemplates()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to initialize session directories")
			}
			logger.WithField("templates", len(created)).Debug("Initialized session layout")

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success("Initialized " + layout.ClaudeDir())
			if !git.IsGitRepo(root) {
				pretty.WarnPretty("Not a git repository: sessions are tracked per git branch")
			}
			if len(created) == 0 {
				pretty.InfoPretty("  Templates already present")
			}
			for _, path := range created {
				pretty.Path("Template", path)
			}
			return nil
		},
	}
}
