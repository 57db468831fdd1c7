package command

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// SafeBuilder builds subprocess commands through an injectable Executor.
// Commands run without a deadline unless WithTimeout is used.
type SafeBuilder struct {
	executor Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	if exec == nil {
		exec = &RealExecutor{}
	}
	return &SafeBuilder{executor: exec}
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	cancel   context.CancelFunc
	name     string
	args     []string
	dir      string
	executor Executor
}

// Build creates a new command
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}, nil
}

// WithTimeout bounds the command's run time.
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout <= 0 {
		return c
	}
	c.ctx, c.cancel = context.WithTimeout(c.ctx, timeout)
	return c
}

// InDir sets the working directory of the command
func (c *Command) InDir(dir string) *Command {
	c.dir = dir
	return c
}

// String renders the command line for logs and errors.
func (c *Command) String() string {
	s := c.name
	for _, a := range c.args {
		s += " " + a
	}
	return s
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	return cmd
}

// Output runs the command and returns its standard output.
func (c *Command) Output() ([]byte, error) {
	if c.cancel != nil {
		defer c.cancel()
	}
	return c.Exec().Output()
}
