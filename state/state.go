// Package state persists the context refresh hook's prompt counter.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HookState is the on-disk shape of the counter file.
type HookState struct {
	Count int `json:"count"`
}

// Load reads the state file at path. A missing, unreadable or malformed file
// yields the zero state with ok=false.
func Load(path string) (HookState, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HookState{}, false
	}

	var st HookState
	if err := json.Unmarshal(data, &st); err != nil {
		return HookState{}, false
	}
	if st.Count < 0 {
		return HookState{}, false
	}
	return st, true
}

// Save writes st to path, creating the parent directory if needed. The write
// is not atomic; concurrent writers race and the last one wins.
func Save(path string, st HookState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
