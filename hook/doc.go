// Package hook implements the Claude Code context refresh hook.
//
// The hook reads one JSON event from stdin and answers with one JSON object on
// stdout. It counts UserPromptSubmit events in a small state file and, every
// RefreshInterval prompts and at every SessionStart, injects the project's
// context files into the conversation.
//
// The hook never fails the assistant's turn: missing context, unreadable
// files, malformed input and state write errors all degrade to a fallback.
package hook
