package cli

import (
	"github.com/grovetools/mantra/errors"
	"github.com/spf13/cobra"
)

// Execute runs cmd and returns the process exit code. Errors are reported
// through an ErrorHandler on the command's stderr; silent errors only set
// the exit code.
func Execute(cmd *cobra.Command, handler *ErrorHandler) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	executed, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}
	if executed == nil {
		executed = cmd
	}

	if handler == nil {
		handler = NewErrorHandler(false)
	}
	if verbose, _ := executed.Flags().GetBool("verbose"); verbose {
		handler.Verbose = true
	}

	if _, ok := errors.As(err); ok {
		handler.Handle(executed.ErrOrStderr(), err)
	} else {
		PrintError(executed, err)
	}
	return 1
}
