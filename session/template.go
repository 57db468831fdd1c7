package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/mantra/branch"
)

// DateLayout is the calendar date format used in templates and metadata.
const DateLayout = "2006-01-02"

// TemplateVars are the values substituted into a session template.
type TemplateVars struct {
	Description string
	Branch      string
	Type        string
	Date        string
	IssueID     string
	IssueNumber string
}

// VarsFor builds the template values for a parsed branch.
func VarsFor(d branch.Descriptor, branchName, date string) TemplateVars {
	return TemplateVars{
		Description: d.Description,
		Branch:      branchName,
		Type:        string(d.Type),
		Date:        date,
		IssueID:     d.IssueID,
		IssueNumber: d.IssueNumber,
	}
}

// LoadTemplate reads <templates>/<type>.md. A missing or unreadable template
// is reported as ok=false.
func (l Layout) LoadTemplate(sessionType string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(l.TemplatesDir(), sessionType+".md"))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Render substitutes the known {{placeholders}} in tmpl. Unknown placeholders
// are kept as written.
func Render(tmpl string, vars TemplateVars) string {
	issueID := vars.IssueID
	if issueID == "" {
		issueID = "N/A"
	}
	r := strings.NewReplacer(
		"{{description}}", vars.Description,
		"{{branch}}", vars.Branch,
		"{{type}}", vars.Type,
		"{{date}}", vars.Date,
		"{{issueId}}", issueID,
		"{{issueNumber}}", vars.IssueNumber,
	)
	return r.Replace(tmpl)
}

// DefaultTemplate renders the built-in session log used when no template
// file exists for the branch type.
func DefaultTemplate(vars TemplateVars) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Session: %s\n\n", vars.Description)
	b.WriteString("## Details\n")
	if vars.IssueID != "" {
		fmt.Fprintf(&b, "- **Issue**: %s\n", vars.IssueID)
	}
	fmt.Fprintf(&b, "- **Branch**: %s\n", vars.Branch)
	fmt.Fprintf(&b, "- **Type**: %s\n", vars.Type)
	fmt.Fprintf(&b, "- **Created**: %s\n", vars.Date)
	b.WriteString("- **Status**: in-progress\n\n")

	b.WriteString("## Objective\n[Describe the goal of this work]\n\n")
	b.WriteString("## Implementation Plan\n[Outline the approach]\n\n")
	b.WriteString("## Session Log\n\n")
	fmt.Fprintf(&b, "### %s - Session Started\n", vars.Date)
	b.WriteString("- Created session file\n\n")
	b.WriteString("## Key Decisions\n[Document important decisions with rationale]\n\n")
	b.WriteString("## Learnings\n[Capture insights and surprises]\n\n")
	b.WriteString("## Files Changed\n- [List modified files]\n\n")
	b.WriteString("## Next Steps\n1. [First task]\n")

	return b.String()
}

// StarterTemplates are written by `mantra init` for each branch type.
var StarterTemplates = map[string]string{
	"feature": `# Feature: {{description}}

- **Issue**: {{issueId}}
- **Branch**: {{branch}}
- **Created**: {{date}}

## Objective

## Acceptance Criteria
- [ ]

## Session Log

### {{date}} - Session Started

## Key Decisions

## Next Steps
`,
	"fix": `# Fix: {{description}}

- **Issue**: {{issueId}}
- **Branch**: {{branch}}
- **Created**: {{date}}

## Symptoms

## Root Cause

## Session Log

### {{date}} - Session Started

## Key Decisions

## Next Steps
`,
	"chore": `# Chore: {{description}}

- **Branch**: {{branch}}
- **Created**: {{date}}

## Scope

## Session Log

### {{date}} - Session Started

## Key Decisions

## Next Steps
`,
}

// WriteStarterTemplates writes StarterTemplates into the templates directory,
// leaving existing files untouched. It returns the paths it created.
func (l Layout) WriteStarterTemplates() ([]string, error) {
	if err := l.EnsureDirs(); err != nil {
		return nil, err
	}

	var created []string
	for _, name := range []string{"feature", "fix", "chore"} {
		path := filepath.Join(l.TemplatesDir(), name+".md")
		if fileExists(path) {
			continue
		}
		if err := os.WriteFile(path, []byte(StarterTemplates[name]), 0644); err != nil {
			return created, fmt.Errorf("write template %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
