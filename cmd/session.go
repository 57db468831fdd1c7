package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/logging"
	"github.com/grovetools/mantra/session"
	"github.com/spf13/cobra"
)

// NewSessionCmd groups the session commands under "mantra session".
func NewSessionCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the session log of the current branch",
	}
	cmd.AddCommand(NewCreateSessionCmd(env, "create"))
	cmd.AddCommand(NewGetSessionCmd(env, "get"))
	return cmd
}

// NewCreateSessionCmd creates the command that writes a session log and branch
// metadata for the current branch.
func NewCreateSessionCmd(env *Env, use string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   use,
		Short: "Create a session log for the current branch",
		Long: `Creates .claude/sessions/<session>.md and .claude/branches/<branch>.meta
for the current git branch. The session file is rendered from
.claude/templates/<type>.md when present, or from the built-in template.`,
		Example: `  # Start a session on a feature branch
  mantra session create

  # Recreate both files
  mantra session create --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd, "session")
			store, err := newStore(cmd, env, logger)
			if err != nil {
				return err
			}

			result, err := store.Create(context.Background(), session.CreateOptions{Force: force})
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal create result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success("Session created successfully!")
			pretty.Field("Branch", result.Branch)
			pretty.Path("Session", result.SessionPath)
			pretty.Path("Metadata", result.MetaPath)
			if result.Descriptor.HasIssue() {
				pretty.Field("Issue", result.Descriptor.IssueID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing session")
	return cmd
}

// NewGetSessionCmd creates the command that resolves the session of the
// current branch.
func NewGetSessionCmd(env *Env, use string) *cobra.Command {
	var (
		pathOnly bool
		content  bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: "Show the session of the current branch",
		Long: `Resolves the session file of the current branch. The session recorded in
the branch metadata wins over the name derived from the branch.
When several output flags are given, --path wins over --content, which wins
over --json.`,
		Example: `  mantra session get
  mantra session get --path
  mantra session get --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd, "session")
			store, err := newStore(cmd, env, logger)
			if err != nil {
				return err
			}

			info, err := store.Get(context.Background())
			if err != nil {
				if mErr, ok := errors.As(err); ok && quiet && mErr.Code == errors.ErrCodeSessionNotFound {
					return mErr.Quiet()
				}
				return err
			}

			mode := session.SelectOutput(cli.GetOptions(cmd).JSONOutput, pathOnly, content)
			return session.WriteInfo(cmd.OutOrStdout(), info, mode)
		},
	}

	cmd.Flags().BoolVar(&pathOnly, "path", false, "Print only the session file path")
	cmd.Flags().BoolVar(&content, "content", false, "Print the session file content")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing when no session exists")
	return cmd
}
