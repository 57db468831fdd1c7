package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	contextFileExt = ".yml"

	claudeMdTip = "\n⚠️ **Tip**: Multi-file context is supported in `.claude/context/`. " +
		"Create `*.yml` files for modular context management."
	noContextWarning = "\n⚠️ No context files found. " +
		"Create `.claude/context/*.yml` or `CLAUDE.md` for context refresh."
)

// FreshnessIndicator renders the per-prompt counter line, for example
// "📍 Context: 12/50".
func FreshnessIndicator(count, interval int, refreshed bool) string {
	s := fmt.Sprintf("📍 Context: %d/%d", count, interval)
	if refreshed {
		s += " (refreshed)"
	}
	return s
}

// BuildContext assembles the context bundle for cwd. *.yml files directly
// inside the context directory win; otherwise the CLAUDE.md file is used with
// a tip; otherwise a warning is returned.
func (p *Processor) BuildContext(cwd, reason string) string {
	files := p.findContextFiles(cwd)
	if len(files) > 0 {
		return fmt.Sprintf("\n---\n**Context Refresh** (%s)\n", reason) + p.readContextFiles(files)
	}

	if claudeMd, ok := p.readClaudeMd(cwd); ok {
		parts := []string{
			fmt.Sprintf("\n---\n**Context Refresh** (%s, from CLAUDE.md)\n", reason) + claudeMd,
			claudeMdTip,
		}
		return strings.Join(parts, "\n")
	}

	p.logger.WithField("cwd", cwd).Debug("No context files found")
	return noContextWarning
}

// findContextFiles lists the *.yml entries of the context directory in
// directory order. Subdirectories are not searched.
func (p *Processor) findContextFiles(cwd string) []string {
	dir := resolvePath(cwd, p.cfg.ContextDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.WithError(err).WithField("dir", dir).Debug("Cannot list context directory")
		}
		return nil
	}

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), contextFileExt) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

// readContextFiles renders each readable file as "### <basename>\n<content>",
// separated by blank lines. Unreadable files are skipped.
func (p *Processor) readContextFiles(files []string) string {
	contents := make([]string, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			p.logger.WithError(err).WithField("file", f).Debug("Skipping unreadable context file")
			continue
		}
		contents = append(contents, fmt.Sprintf("### %s\n%s", filepath.Base(f), data))
	}
	return strings.Join(contents, "\n\n")
}

// readClaudeMd returns the CLAUDE.md content. An empty file counts as missing.
func (p *Processor) readClaudeMd(cwd string) (string, bool) {
	data, err := os.ReadFile(resolvePath(cwd, p.cfg.ClaudeMd))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// resolvePath joins a configured path onto cwd unless it is already absolute.
func resolvePath(cwd, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
