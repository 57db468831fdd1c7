package session

import (
	"strings"
	"testing"

	"github.com/grovetools/mantra/branch"
	"github.com/grovetools/mantra/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	content := `# Branch Metadata
branch: issue/feature-1/x
session: 1-x.md
status: blocked
last-updated: 2026-03-14
empty:
not a field
  indented: no

## Current Work
[Describe what you're working on]
`
	meta, err := ParseMetadata(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "issue/feature-1/x", meta["branch"])
	assert.Equal(t, "1-x.md", meta.Session())
	assert.Equal(t, "blocked", meta.Status())
	assert.Equal(t, "2026-03-14", meta["last-updated"])
	assert.NotContains(t, meta, "empty")
	assert.NotContains(t, meta, "indented")
}

func TestRenderMetadataRoundTrip(t *testing.T) {
	name := "fix/ABC-9/crash"
	out := RenderMetadata(MetadataFields{
		Branch:     name,
		Descriptor: branch.Parse(name),
		Date:       "2026-03-14",
		Parent:     "main",
	})

	assert.True(t, strings.HasPrefix(out, "# Branch Metadata\n"))
	assert.Contains(t, out, "## Current Work\n")

	meta, err := ParseMetadata(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		"branch":       name,
		"session":      "ABC-9-crash.md",
		"type":         "fix",
		"status":       StatusInProgress,
		"created":      "2026-03-14",
		"last-updated": "2026-03-14",
		"description":  "crash",
		"parent":       "main",
		"issue":        "ABC-9",
	}, meta)
}

func TestRenderMetadataWithoutIssue(t *testing.T) {
	out := RenderMetadata(MetadataFields{
		Branch:     "chore/deps",
		Descriptor: branch.Parse("chore/deps"),
		Date:       "2026-03-14",
		Parent:     "develop",
	})
	assert.NotContains(t, out, "issue:")
	assert.Contains(t, out, "parent: develop\n")
}

func TestReadMetadataFile(t *testing.T) {
	dir := t.TempDir()

	_, ok := ReadMetadataFile(dir + "/missing")
	assert.False(t, ok)

	path := testutil.WriteFile(t, dir, "meta", "session: a.md\n")
	meta, ok := ReadMetadataFile(path)
	require.True(t, ok)
	assert.Equal(t, "a.md", meta.Session())
}
