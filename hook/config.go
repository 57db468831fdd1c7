package hook

import "github.com/grovetools/mantra/pkg/paths"

const (
	// DefaultRefreshInterval is the number of prompts between periodic refreshes.
	DefaultRefreshInterval = 50
	// DefaultContextDir is searched, relative to the working directory, for *.yml context files.
	DefaultContextDir = ".claude/context"
	// DefaultClaudeMd is the fallback context file.
	DefaultClaudeMd = "CLAUDE.md"
)

// Config controls the hook.
type Config struct {
	RefreshInterval int
	StateFile       string
	ContextDir      string
	ClaudeMd        string
}

// DefaultConfig returns the hook defaults. The state file lives in the
// user's Claude home directory.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: DefaultRefreshInterval,
		StateFile:       paths.DefaultStateFile(),
		ContextDir:      DefaultContextDir,
		ClaudeMd:        DefaultClaudeMd,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.StateFile == "" {
		c.StateFile = paths.DefaultStateFile()
	}
	if c.ContextDir == "" {
		c.ContextDir = DefaultContextDir
	}
	if c.ClaudeMd == "" {
		c.ClaudeMd = DefaultClaudeMd
	}
	return c
}
