package cmd

import (
	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/config"
	"github.com/grovetools/mantra/hook"
	"github.com/grovetools/mantra/util/pathutil"
	"github.com/spf13/cobra"
)

// NewHookCmd creates the Claude Code hook command. It reads one event from
// stdin and writes at most one response to stdout. Configuration problems
// never fail the hook; the defaults are used instead.
func NewHookCmd(env *Env, use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Answer Claude Code SessionStart and UserPromptSubmit hooks",
		Long: `Injects the project context (.claude/context/*.yml, or CLAUDE.md) at
session start and every refresh_interval prompts. Every other prompt gets a
context freshness indicator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd, "hook")

			cfg := hook.Config{}
			if root, err := env.root(); err != nil {
				logger.WithError(err).Debug("Could not resolve working directory, using defaults")
			} else if loaded, err := cli.LoadConfig(cmd, root); err != nil {
				logger.WithError(err).Debug("Could not load configuration, using defaults")
			} else {
				cfg = hookConfig(loaded)
			}

			p := hook.NewProcessor(cfg, logger)
			return p.Run(env.stdin(), cmd.OutOrStdout())
		},
	}
}

// hookConfig maps the configuration onto the hook. Zero values take the hook
// defaults; "~" and environment variables in paths are expanded.
func hookConfig(cfg *config.Config) hook.Config {
	return hook.Config{
		RefreshInterval: cfg.RefreshInterval,
		StateFile:       pathutil.Expand(cfg.StateFile),
		ContextDir:      pathutil.Expand(cfg.ContextDir),
		ClaudeMd:        pathutil.Expand(cfg.ClaudeMd),
	}
}
