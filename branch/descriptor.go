package branch

// Platform identifies the issue tracker a branch name refers to.
type Platform string

const (
	PlatformGitHub      Platform = "github"
	PlatformJira        Platform = "jira"
	PlatformAzureDevOps Platform = "azure-devops"
	PlatformNone        Platform = "none"
	PlatformUnknown     Platform = "unknown"
)

// Type is the kind of work a branch carries.
type Type string

const (
	TypeFeature Type = "feature"
	TypeFix     Type = "fix"
	TypeChore   Type = "chore"
	TypeUnknown Type = "unknown"
)

// Descriptor is the structured form of a branch name. It is recomputed from
// the name on every call and never persisted.
type Descriptor struct {
	Platform Platform `json:"platform"`
	Type     Type     `json:"type"`
	// IssueNumber is the raw identifier ("123", "PROJ-123"); empty when absent.
	IssueNumber string `json:"issueNumber,omitempty"`
	// IssueID is the display form ("#123", "PROJ-123"); empty when absent.
	IssueID     string `json:"issueId,omitempty"`
	Description string `json:"description"`
	// SessionFile is the markdown file name inside the sessions directory.
	SessionFile string `json:"sessionFile"`
	// BranchMetaFile is the metadata file name inside the branches directory.
	BranchMetaFile string `json:"branchMetaFile"`
}

// HasIssue reports whether the branch name carries an issue identifier.
func (d Descriptor) HasIssue() bool {
	return d.IssueID != ""
}
