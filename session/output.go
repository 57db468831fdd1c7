package session

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputMode selects how Get results are printed.
type OutputMode int

const (
	OutputSummary OutputMode = iota
	OutputJSON
	OutputPath
	OutputContent
)

// SelectOutput picks exactly one output mode when several flags are set.
// Precedence is path, then content, then json, then the summary.
func SelectOutput(jsonOut, pathOut, contentOut bool) OutputMode {
	switch {
	case pathOut:
		return OutputPath
	case contentOut:
		return OutputContent
	case jsonOut:
		return OutputJSON
	default:
		return OutputSummary
	}
}

// WriteInfo prints info to w in the given mode.
func WriteInfo(w io.Writer, info *Info, mode OutputMode) error {
	switch mode {
	case OutputPath:
		_, err := fmt.Fprintln(w, info.SessionFile)
		return err

	case OutputContent:
		data, err := os.ReadFile(info.SessionFile)
		if err != nil {
			return fmt.Errorf("read session file: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case OutputJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal session info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	default:
		fmt.Fprintf(w, "Branch: %s\n", info.Branch)
		fmt.Fprintf(w, "Session: %s\n", info.SessionFile)
		if info.MetaFile != nil {
			fmt.Fprintf(w, "Metadata: %s\n", *info.MetaFile)
		}
		fmt.Fprintf(w, "Status: %s\n", info.Status)
		fmt.Fprintf(w, "Type: %s\n", info.Type)
		if info.IssueID != nil {
			fmt.Fprintf(w, "Issue: %s\n", *info.IssueID)
		}
		return nil
	}
}
