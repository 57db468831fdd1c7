package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func clearLogEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MANTRA_LOG_LEVEL", "")
	t.Setenv("MANTRA_LOG_CALLER", "")
	t.Setenv("MANTRA_DEBUG", "")
}

func TestNewLoggerCachesPerComponent(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("MANTRA_HOME", t.TempDir())
	Reset()
	t.Cleanup(Reset)

	a := NewLogger("session")
	b := NewLogger("session")
	c := NewLogger("hook")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "session", a.Data["component"])
	assert.Equal(t, "hook", c.Data["component"])
}

func TestLevelSelection(t *testing.T) {
	t.Run("default info", func(t *testing.T) {
		clearLogEnv(t)
		entry := newLoggerFromConfig("x", Config{})
		assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
	})

	t.Run("config", func(t *testing.T) {
		clearLogEnv(t)
		entry := newLoggerFromConfig("x", Config{Level: "warn"})
		assert.Equal(t, logrus.WarnLevel, entry.Logger.GetLevel())
	})

	t.Run("env wins over config", func(t *testing.T) {
		clearLogEnv(t)
		t.Setenv("MANTRA_LOG_LEVEL", "error")
		entry := newLoggerFromConfig("x", Config{Level: "warn"})
		assert.Equal(t, logrus.ErrorLevel, entry.Logger.GetLevel())
	})

	t.Run("invalid falls back to info", func(t *testing.T) {
		clearLogEnv(t)
		entry := newLoggerFromConfig("x", Config{Level: "chatty"})
		assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
	})

	t.Run("caller reporting", func(t *testing.T) {
		clearLogEnv(t)
		t.Setenv("MANTRA_LOG_CALLER", "true")
		entry := newLoggerFromConfig("x", Config{})
		assert.True(t, entry.Logger.ReportCaller)
	})
}

func TestStderrSink(t *testing.T) {
	t.Run("auto is silent at info", func(t *testing.T) {
		clearLogEnv(t)
		buf := captureStderr(t)
		newLoggerFromConfig("x", Config{}).Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("auto logs while debugging", func(t *testing.T) {
		clearLogEnv(t)
		buf := captureStderr(t)
		newLoggerFromConfig("x", Config{Level: "debug"}).Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("MANTRA_DEBUG", func(t *testing.T) {
		clearLogEnv(t)
		t.Setenv("MANTRA_DEBUG", "1")
		buf := captureStderr(t)
		newLoggerFromConfig("x", Config{}).Info("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("always", func(t *testing.T) {
		clearLogEnv(t)
		buf := captureStderr(t)
		newLoggerFromConfig("x", Config{Format: FormatConfig{StructuredToStderr: "always"}}).Info("visible")
		assert.Contains(t, buf.String(), "[INFO] [x] visible")
	})

	t.Run("never", func(t *testing.T) {
		clearLogEnv(t)
		t.Setenv("MANTRA_DEBUG", "1")
		buf := captureStderr(t)
		newLoggerFromConfig("x", Config{Format: FormatConfig{StructuredToStderr: "never"}}).Info("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestEnableDebug(t *testing.T) {
	clearLogEnv(t)
	buf := captureStderr(t)

	entry := newLoggerFromConfig("x", Config{})
	entry.Debug("hidden")
	assert.Empty(t, buf.String())

	EnableDebug(entry)
	entry.Debug("visible")
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.Contains(t, buf.String(), "visible")
}

func TestFileSink(t *testing.T) {
	clearLogEnv(t)
	captureStderr(t)
	path := filepath.Join(t.TempDir(), "logs", "mantra.log")

	entry := newLoggerFromConfig("hook", Config{
		File: FileSinkConfig{Enabled: true, Path: path},
	})
	entry.WithField("count", 3).Info("Prompt counted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [hook] Prompt counted count=3")
}

func TestJSONPreset(t *testing.T) {
	clearLogEnv(t)
	buf := captureStderr(t)
	entry := newLoggerFromConfig("x", Config{Format: FormatConfig{
		Preset:             "json",
		StructuredToStderr: "always",
	}})
	entry.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"component":"x"`)
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "session",
					"branch":    "feature/x",
				},
			},
			want: []string{"[INFO]", "[session]", "test message", "branch=feature/x"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "careful",
				Data:    logrus.Fields{"component": "session"},
			},
			want:    []string{"[WARN] careful"},
			notWant: []string{"[session]", "[WARNING]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
			assert.True(t, strings.HasSuffix(string(out), "\n"))
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.DebugLevel,
		Message: "m",
		Data:    logrus.Fields{"zeta": 1, "alpha": 2, "component": "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "[DEBUG] [c] m alpha=2 zeta=1\n", string(out))
}

func TestTextFormatterCaller(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{},
		Caller:  &runtime.Frame{File: "/src/mantra/hook/processor.go", Line: 42, Function: "github.com/grovetools/mantra/hook.(*Processor).Run"},
		Logger:  &logrus.Logger{ReportCaller: true},
	}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[processor.go:42 hook.(*Processor).Run]")
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)
	p.Success("Session created successfully!")
	p.Field("Branch", "feature/x")
	p.Path("Session", "/repo/.claude/sessions/feature-x.md")
	p.WarnPretty("exists")

	out := buf.String()
	assert.Contains(t, out, "Session created successfully!")
	assert.Contains(t, out, "Branch")
	assert.Contains(t, out, "feature/x")
	assert.Contains(t, out, "/repo/.claude/sessions/feature-x.md")
	assert.Contains(t, out, "exists")
}
