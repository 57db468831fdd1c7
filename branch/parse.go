package branch

import (
	"regexp"
	"strings"
)

// Rule is one branch naming convention. Rules are evaluated in order and the
// first match wins.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	build   func(name string, m []string) Descriptor
}

// rules is ordered. Jira must precede Azure DevOps: both share the
// "<type>/<segment>/<desc>" shape and only the Jira segment admits letters.
var rules = []Rule{
	{
		Name:    "githubIssue",
		Pattern: regexp.MustCompile(`^issue/(feature|fix|chore)-(\d+)/(.+)$`),
		build: func(name string, m []string) Descriptor {
			return Descriptor{
				Platform:       PlatformGitHub,
				Type:           Type(m[1]),
				IssueNumber:    m[2],
				IssueID:        "#" + m[2],
				Description:    m[3],
				SessionFile:    m[2] + "-" + m[3] + ".md",
				BranchMetaFile: SanitizeName(name),
			}
		},
	},
	{
		Name:    "jira",
		Pattern: regexp.MustCompile(`^(feature|fix|chore)/([A-Z]+-\d+)/(.+)$`),
		build: func(name string, m []string) Descriptor {
			return Descriptor{
				Platform:       PlatformJira,
				Type:           Type(m[1]),
				IssueNumber:    m[2],
				IssueID:        m[2],
				Description:    m[3],
				SessionFile:    m[2] + "-" + m[3] + ".md",
				BranchMetaFile: SanitizeName(name),
			}
		},
	},
	{
		Name:    "azureDevOps",
		Pattern: regexp.MustCompile(`^(feature|fix|chore)/(\d+)/(.+)$`),
		build: func(name string, m []string) Descriptor {
			return Descriptor{
				Platform:       PlatformAzureDevOps,
				Type:           Type(m[1]),
				IssueNumber:    m[2],
				IssueID:        "#" + m[2],
				Description:    m[3],
				SessionFile:    m[2] + "-" + m[3] + ".md",
				BranchMetaFile: SanitizeName(name),
			}
		},
	},
	{
		Name:    "simple",
		Pattern: regexp.MustCompile(`^(feature|fix|chore)/(.+)$`),
		build: func(name string, m []string) Descriptor {
			return Descriptor{
				Platform:       PlatformNone,
				Type:           Type(m[1]),
				Description:    m[2],
				SessionFile:    m[1] + "-" + m[2] + ".md",
				BranchMetaFile: SanitizeName(name),
			}
		},
	},
}

// Rules returns the ordered naming conventions Parse recognizes.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Parse maps a branch name to its Descriptor.
func Parse(name string) Descriptor {
	for _, r := range rules {
		if m := r.Pattern.FindStringSubmatch(name); m != nil {
			return r.build(name, m)
		}
	}

	sanitized := SanitizeName(name)
	return Descriptor{
		Platform:       PlatformUnknown,
		Type:           TypeUnknown,
		Description:    name,
		SessionFile:    sanitized + ".md",
		BranchMetaFile: sanitized,
	}
}

// SanitizeName replaces every path separator in a branch name with a hyphen.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}
