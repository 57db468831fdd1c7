package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/tui/theme"
)

// DefaultCreateHint is the command suggested when no session exists.
const DefaultCreateHint = "mantra session create"

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	// CreateHint is the command suggested when no session exists.
	CreateHint string
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose:    verbose,
		CreateHint: DefaultCreateHint,
	}
}

// Handle writes a user-facing description of err to w. Silent errors print
// nothing.
func (h *ErrorHandler) Handle(w io.Writer, err error) {
	if err == nil || errors.IsSilent(err) {
		return
	}

	label := theme.DefaultTheme.Error.Render("Error:")
	mErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeNotGitRepo:
		fmt.Fprintf(w, "%s Not in a git repository\n", label)

	case errors.ErrCodeProtectedBranch:
		fmt.Fprintf(w, "%s Cannot create session on protected branch '%s'\n", label, mErr.DetailString("branch"))
		fmt.Fprintln(w, "Create a feature branch first: git checkout -b feature/your-feature")

	case errors.ErrCodeSessionExists:
		fmt.Fprintf(w, "%s Session already exists for this branch\n", label)
		fmt.Fprintf(w, "  Session: %s\n", mErr.DetailString("session"))
		fmt.Fprintf(w, "  Metadata: %s\n", mErr.DetailString("metadata"))
		fmt.Fprintln(w, "Use --force to overwrite")

	case errors.ErrCodeSessionNotFound:
		fmt.Fprintln(w, "No session found for current branch")
		fmt.Fprintf(w, "  Branch: %s\n", mErr.DetailString("branch"))
		fmt.Fprintf(w, "  Expected session: %s\n", mErr.DetailString("expected"))
		fmt.Fprintf(w, "Create one with: %s\n", h.createHint())

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(w, "%s Configuration file not found: %s\n", label, mErr.DetailString("path"))

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(w, "%s Invalid configuration: %s\n", label, mErr.Message)
		if path := mErr.DetailString("path"); path != "" {
			fmt.Fprintf(w, "  File: %s\n", path)
		}
		if mErr.Cause != nil {
			fmt.Fprintf(w, "%v\n", mErr.Cause)
		}

	default:
		fmt.Fprintf(w, "%s %v\n", label, err)
	}

	if h.Verbose && mErr != nil {
		fmt.Fprintf(w, "\nError details:\n%s\n", mErr.ToJSON())
	}
}

func (h *ErrorHandler) createHint() string {
	if h.CreateHint == "" {
		return DefaultCreateHint
	}
	return h.CreateHint
}
