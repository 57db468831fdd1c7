// Package paths resolves the user-level directories mantra reads and writes.
//
// Resolution order for mantra's own directories:
// 1. MANTRA_HOME (portable root) → $MANTRA_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/mantra
// 3. Platform defaults → ~/.config/mantra, ~/.local/state/mantra
//
// The Claude home (~/.claude) is shared with Claude Code itself and holds
// the hook counter file.
package paths

import (
	"os"
	"path/filepath"
)

const (
	appName       = "mantra"
	claudeDirName = ".claude"
	stateFileName = "mantra-state.json"
)

func getConfigHome() string {
	if home := os.Getenv("MANTRA_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

func getStateHome() string {
	if home := os.Getenv("MANTRA_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the mantra configuration directory holding the global
// mantra.yml. Empty if no home directory can be determined.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("MANTRA_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the mantra state directory. Used for log files.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("MANTRA_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// ClaudeHome returns ~/.claude, or <tmp>/.claude when the home directory
// cannot be determined.
func ClaudeHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, claudeDirName)
}

// DefaultStateFile returns the default location of the hook's prompt counter.
func DefaultStateFile() string {
	return filepath.Join(ClaudeHome(), stateFileName)
}
