package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/mantra/config"
	"github.com/grovetools/mantra/pkg/paths"
	"github.com/grovetools/mantra/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// stderr is a variable so tests can capture the stderr sink.
	stderr io.Writer = os.Stderr
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component.
//
// Logs never go to stdout: the hook protocol and the session commands own it.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			fmt.Fprintf(stderr, "mantra: failed to parse 'logging' config: %v\n", err)
		}
	}

	entry := newLoggerFromConfig(component, logCfg)
	loggers[component] = entry
	return entry
}

// Reset drops all cached loggers so the next NewLogger call re-reads the
// configuration.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}

// EnableDebug switches the entry's logger to debug level. A logger that had
// no sink starts writing to stderr.
func EnableDebug(entry *logrus.Entry) {
	logger := entry.Logger
	logger.SetLevel(logrus.DebugLevel)
	if logger.Out == io.Discard {
		logger.SetOutput(stderr)
	}
}

func newLoggerFromConfig(component string, logCfg Config) *logrus.Entry {
	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if os.Getenv("MANTRA_LOG_LEVEL") != "" {
		levelStr = os.Getenv("MANTRA_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("MANTRA_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{
			Config: logCfg.Format,
			Colors: !logCfg.File.Enabled && stderrIsTerminal(),
		})
	}

	var writers []io.Writer

	if logCfg.File.Enabled {
		logFilePath := pathutil.Expand(logCfg.File.Path)
		if logFilePath == "" && paths.StateDir() != "" {
			logFilePath = filepath.Join(paths.StateDir(), "logs", component+".log")
		}
		if file, err := openLogFile(logFilePath); err == nil {
			writers = append(writers, file)
		} else {
			fmt.Fprintf(stderr, "mantra: %v\n", err)
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// shouldLogToStderr resolves the structured_to_stderr mode. "auto" logs to
// stderr only while debugging, keeping hook and CLI output clean otherwise.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("MANTRA_DEBUG") == "1" || level >= logrus.DebugLevel
	}
}

func stderrIsTerminal() bool {
	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("no log file path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}
