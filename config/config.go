package config

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/grovetools/mantra/errors"
	"github.com/grovetools/mantra/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override configuration files.
const (
	EnvRefreshInterval = "MANTRA_REFRESH_INTERVAL"
	EnvStateFile       = "MANTRA_STATE_FILE"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

var (
	configNames   = []string{"mantra.yml", "mantra.yaml", "mantra.toml"}
	overrideNames = []string{"mantra.override.yml", "mantra.override.yaml", "mantra.override.toml"}
)

// Load reads and validates a single configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, formatOf(path))
	if err != nil {
		if mErr, ok := errors.As(err); ok {
			mErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the layered configuration for the current directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging for the project
// rooted at root:
// 1. Global config (~/.config/mantra/mantra.yml) - base layer
// 2. Project config (.claude/mantra.yml) - overrides global
// 3. Local override (.claude/mantra.override.yml) - overrides all
//
// Environment overrides are applied last. Every layer is optional.
func LoadFrom(root string) (*Config, error) {
	return LoadFromWithLogger(root, discardLogger())
}

// LoadFromWithLogger is LoadFrom with debug logging of each layer.
func LoadFromWithLogger(root string, logger *logrus.Logger) (*Config, error) {
	layered, err := LoadLayeredWithLogger(root, logger)
	if err != nil {
		return nil, err
	}
	return layered.Final, nil
}

// LoadLayered reads every configuration layer for root and merges them.
func LoadLayered(root string) (*LayeredConfig, error) {
	return LoadLayeredWithLogger(root, discardLogger())
}

// LoadLayeredWithLogger is LoadLayered with debug logging of each layer.
func LoadLayeredWithLogger(root string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		FilePaths: make(map[ConfigSource]string),
	}

	layers := []struct {
		source ConfigSource
		path   string
		target **Config
	}{
		{SourceGlobal, findFile(paths.ConfigDir(), configNames), &layered.Global},
		{SourceProject, findFile(filepath.Join(root, ".claude"), configNames), &layered.Project},
		{SourceOverride, findFile(filepath.Join(root, ".claude"), overrideNames), &layered.Override},
	}

	final := &Config{}
	for _, l := range layers {
		if l.path == "" {
			continue
		}
		logger.WithFields(logrus.Fields{
			"source": l.source,
			"path":   l.path,
		}).Debug("Loading configuration layer")

		cfg, err := Load(l.path)
		if err != nil {
			return nil, err
		}
		*l.target = cfg
		layered.FilePaths[l.source] = l.path
		final = mergeConfigs(final, cfg)
	}

	if err := applyEnvOverrides(final); err != nil {
		return nil, err
	}
	layered.Final = final

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(final); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	return layered, nil
}

// LoadFromBytes parses, validates and decodes one configuration document.
// format is "yaml" or "toml".
func LoadFromBytes(data []byte, format string) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	raw := make(map[string]interface{})
	var err error
	if format == "toml" {
		err = toml.Unmarshal(expanded, &raw)
	} else {
		err = yaml.Unmarshal(expanded, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+strings.ToUpper(format)+" configuration")
	}

	v, err := schemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}
	if err := v.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	var cfg Config
	if format == "toml" {
		err = toml.Unmarshal(expanded, &cfg)
	} else {
		err = yaml.Unmarshal(expanded, &cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	cfg.Extensions = nil
	for key, value := range raw {
		if knownKeys[key] {
			continue
		}
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]interface{})
		}
		cfg.Extensions[key] = value
	}

	return &cfg, nil
}

// ProjectConfigPath returns the path `mantra init` writes the project
// configuration to.
func ProjectConfigPath(root string) string {
	return filepath.Join(root, ".claude", configNames[0])
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvRefreshInterval); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return errors.ConfigInvalid(EnvRefreshInterval+" must be a positive integer").
				WithDetail("value", v)
		}
		cfg.RefreshInterval = n
	}
	if v := os.Getenv(EnvStateFile); v != "" {
		cfg.StateFile = v
	}
	return nil
}

func findFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func formatOf(path string) string {
	if strings.HasSuffix(path, ".toml") {
		return "toml"
	}
	return "yaml"
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
