package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Hook event names sent by Claude Code.
const (
	EventSessionStart     = "SessionStart"
	EventUserPromptSubmit = "UserPromptSubmit"
)

// Input is the JSON event Claude Code writes to the hook's stdin.
type Input struct {
	HookEventName string `json:"hook_event_name"`
	Cwd           string `json:"cwd"`
	Source        string `json:"source"`
}

// Output is the JSON the hook writes to stdout.
type Output struct {
	SystemMessage      string         `json:"systemMessage"`
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SpecificOutput carries the text injected into the conversation.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// ReadInput decodes a hook event from r. ok is false when the payload cannot
// be read or is not valid JSON.
func ReadInput(r io.Reader) (Input, bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, false
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, false
	}
	return in, true
}

// WriteOutput encodes out as a single JSON line. HTML characters are not
// escaped so context files pass through verbatim.
func WriteOutput(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode hook output: %w", err)
	}
	return nil
}
