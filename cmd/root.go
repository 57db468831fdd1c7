package cmd

import (
	"github.com/grovetools/mantra/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the umbrella mantra command.
func NewRootCmd(env *Env) *cobra.Command {
	root := cli.NewStandardCommand("mantra", "Branch session logs and context refresh for Claude Code")

	root.AddCommand(NewSessionCmd(env))
	root.AddCommand(NewHookCmd(env, "hook"))
	root.AddCommand(NewInitCmd(env))
	root.AddCommand(NewConfigCmd(env))
	root.AddCommand(cli.NewVersionCommand("mantra"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

// NewCreateSessionRoot returns the root of the standalone create-session binary.
func NewCreateSessionRoot(env *Env) *cobra.Command {
	root := NewCreateSessionCmd(env, "create-session")
	cli.AddStandardFlags(root)
	return root
}

// NewGetSessionRoot returns the root of the standalone get-session binary.
func NewGetSessionRoot(env *Env) *cobra.Command {
	root := NewGetSessionCmd(env, "get-session")
	cli.AddStandardFlags(root)
	return root
}

// NewContextRefreshRoot returns the root of the standalone hook binary.
func NewContextRefreshRoot(env *Env) *cobra.Command {
	root := NewHookCmd(env, "context-refresh")
	cli.AddStandardFlags(root)
	return root
}
