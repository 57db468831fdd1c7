package hook

import (
	"io"
	"os"
	"strings"

	"github.com/grovetools/mantra/state"
	"github.com/sirupsen/logrus"
)

const defaultSource = "startup"

// Processor answers hook events.
type Processor struct {
	cfg    Config
	logger *logrus.Entry
	getwd  func() (string, error)
}

// NewProcessor returns a Processor for cfg. Zero config fields take their
// defaults. A nil logger discards output.
func NewProcessor(cfg Config, logger *logrus.Entry) *Processor {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &Processor{
		cfg:    cfg.withDefaults(),
		logger: logger,
		getwd:  os.Getwd,
	}
}

// Config returns the effective configuration.
func (p *Processor) Config() Config {
	return p.cfg
}

// Process dispatches on the event name. Anything other than SessionStart,
// including an empty name, is treated as UserPromptSubmit.
func (p *Processor) Process(in Input) Output {
	if in.HookEventName == EventSessionStart {
		return p.SessionStart(in)
	}
	return p.UserPromptSubmit(in)
}

// SessionStart resets the counter and always injects the context bundle.
func (p *Processor) SessionStart(in Input) Output {
	cwd := p.cwd(in)
	source := in.Source
	if source == "" {
		source = defaultSource
	}

	p.save(state.HookState{Count: 0})

	indicator := FreshnessIndicator(0, p.cfg.RefreshInterval, true)
	bundle := p.BuildContext(cwd, "session "+source)

	p.logger.WithFields(logrus.Fields{
		"event":  EventSessionStart,
		"source": source,
		"cwd":    cwd,
	}).Debug("Context injected")

	return Output{
		SystemMessage: indicator,
		HookSpecificOutput: SpecificOutput{
			HookEventName:     EventSessionStart,
			AdditionalContext: strings.Join([]string{indicator, bundle}, "\n"),
		},
	}
}

// UserPromptSubmit advances the counter and injects the context bundle each
// time it wraps to zero.
func (p *Processor) UserPromptSubmit(in Input) Output {
	cwd := p.cwd(in)

	st, ok := state.Load(p.cfg.StateFile)
	if !ok {
		p.logger.WithField("path", p.cfg.StateFile).Debug("No usable hook state, starting at 0")
	}
	st.Count = (st.Count + 1) % p.cfg.RefreshInterval
	refresh := st.Count == 0

	indicator := FreshnessIndicator(st.Count, p.cfg.RefreshInterval, refresh)
	parts := []string{indicator}
	if refresh {
		parts = append(parts, p.BuildContext(cwd, "periodic"))
	}

	p.save(st)

	p.logger.WithFields(logrus.Fields{
		"event":   EventUserPromptSubmit,
		"count":   st.Count,
		"refresh": refresh,
	}).Debug("Prompt counted")

	return Output{
		SystemMessage: indicator,
		HookSpecificOutput: SpecificOutput{
			HookEventName:     EventUserPromptSubmit,
			AdditionalContext: strings.Join(parts, "\n"),
		},
	}
}

// Run reads one event from r and writes the answer to w. Malformed input
// produces no output and no error.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	in, ok := ReadInput(r)
	if !ok {
		p.logger.Debug("Ignoring malformed hook input")
		return nil
	}
	return WriteOutput(w, p.Process(in))
}

func (p *Processor) cwd(in Input) string {
	if in.Cwd != "" {
		return in.Cwd
	}
	cwd, err := p.getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func (p *Processor) save(st state.HookState) {
	if err := state.Save(p.cfg.StateFile, st); err != nil {
		p.logger.WithError(err).WithField("path", p.cfg.StateFile).Debug("Failed to save hook state")
	}
}
