package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the mantra configuration. Zero values mean "use the built-in
// default" of the component that consumes the field.
type Config struct {
	// RefreshInterval is the number of prompts between periodic context refreshes.
	RefreshInterval int `yaml:"refresh_interval,omitempty" toml:"refresh_interval,omitempty" jsonschema:"minimum=1,description=Prompts between periodic context refreshes (default 50)"`
	// StateFile is where the hook keeps its prompt counter.
	StateFile string `yaml:"state_file,omitempty" toml:"state_file,omitempty" jsonschema:"description=Path of the hook counter file (default ~/.claude/mantra-state.json)"`
	// ContextDir holds the *.yml context files, relative to the project root.
	ContextDir string `yaml:"context_dir,omitempty" toml:"context_dir,omitempty" jsonschema:"description=Directory of *.yml context files relative to the project (default .claude/context)"`
	// ClaudeMd is the fallback context file, relative to the project root.
	ClaudeMd string `yaml:"claude_md,omitempty" toml:"claude_md,omitempty" jsonschema:"description=Fallback context file relative to the project (default CLAUDE.md)"`

	ProtectedBranches []string `yaml:"protected_branches,omitempty" toml:"protected_branches,omitempty" jsonschema:"description=Branch patterns sessions may not be created on (default main and master)"`
	ParentBranch      string   `yaml:"parent_branch,omitempty" toml:"parent_branch,omitempty" jsonschema:"description=Parent branch recorded in new branch metadata (default main)"`

	// Extensions captures all other top-level keys, such as logging.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = map[string]bool{
	"refresh_interval":   true,
	"state_file":         true,
	"context_dir":        true,
	"claude_md":          true,
	"protected_branches": true,
	"parent_branch":      true,
}

// UnmarshalExtension decodes the extension section key into target, which
// must be a pointer. A missing section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the layer a configuration file belongs to.
type ConfigSource string

const (
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// LayeredConfig holds each configuration layer as read from disk and the
// merged result.
type LayeredConfig struct {
	Global    *Config
	Project   *Config
	Override  *Config
	FilePaths map[ConfigSource]string
	Final     *Config
}
