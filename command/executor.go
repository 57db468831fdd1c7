package command

import (
	"context"
	"os/exec"
)

// Executor creates the processes SafeBuilder runs. Tests substitute one that
// points git at a missing binary.
type Executor interface {
	Command(name string, args ...string) *exec.Cmd
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor runs binaries from PATH.
type RealExecutor struct{}

// Command returns exec.Command(name, args...).
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext returns exec.CommandContext(ctx, name, args...).
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
