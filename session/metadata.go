package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/grovetools/mantra/branch"
)

// StatusInProgress is the status written for a freshly created session.
const StatusInProgress = "in-progress"

var metaLineRegex = regexp.MustCompile(`^(\w[\w-]*): (.+)$`)

// Metadata holds the flat key: value fields of a branch metadata file.
type Metadata map[string]string

// Session returns the session file name recorded in the metadata.
func (m Metadata) Session() string {
	return m["session"]
}

// Status returns the recorded status, or "" if absent.
func (m Metadata) Status() string {
	return m["status"]
}

// ParseMetadata reads key: value lines from r. Headings, blank lines and
// free-text sections are ignored.
func ParseMetadata(r io.Reader) (Metadata, error) {
	meta := make(Metadata)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if m := metaLineRegex.FindStringSubmatch(line); m != nil {
			meta[m[1]] = m[2]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return meta, nil
}

// ReadMetadataFile parses the metadata file at path. A missing or unreadable
// file is reported as ok=false.
func ReadMetadataFile(path string) (Metadata, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	meta, err := ParseMetadata(f)
	if err != nil {
		return nil, false
	}
	return meta, true
}

// MetadataFields are the values written into a new branch metadata file.
type MetadataFields struct {
	Branch     string
	Descriptor branch.Descriptor
	Date       string
	Parent     string
}

// RenderMetadata renders the content of a new branch metadata file.
func RenderMetadata(f MetadataFields) string {
	var b strings.Builder

	b.WriteString("# Branch Metadata\n")
	fmt.Fprintf(&b, "branch: %s\n", f.Branch)
	fmt.Fprintf(&b, "session: %s\n", f.Descriptor.SessionFile)
	fmt.Fprintf(&b, "type: %s\n", f.Descriptor.Type)
	fmt.Fprintf(&b, "status: %s\n", StatusInProgress)
	fmt.Fprintf(&b, "created: %s\n", f.Date)
	fmt.Fprintf(&b, "last-updated: %s\n", f.Date)
	fmt.Fprintf(&b, "description: %s\n", f.Descriptor.Description)
	fmt.Fprintf(&b, "parent: %s\n", f.Parent)
	if f.Descriptor.IssueNumber != "" {
		fmt.Fprintf(&b, "issue: %s\n", f.Descriptor.IssueNumber)
	}
	b.WriteString("\n## Current Work\n[Describe what you're working on]\n")
	b.WriteString("\n## Next Steps\n[What needs to be done next]\n")

	return b.String()
}
