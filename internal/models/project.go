package models

// ProjectStatus is the publication state of a portfolio project.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
	ProjectArchived  ProjectStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectDraft, ProjectPublished, ProjectArchived:
		return true
	}
	return false
}

// LinkItem is a labelled external link attached to a project.
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a portfolio case study. Date is an RFC3339 timestamp kept
// as a string so lexicographic order equals chronological order.
type Project struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"long_description,omitempty"`
	Client          string        `json:"client,omitempty"`
	Role            string        `json:"role,omitempty"`
	ImageURL        string        `json:"image_url"`
	Tags            []string      `json:"tags"`
	Links           []LinkItem    `json:"links"`
	Link            string        `json:"link,omitempty"` // legacy single link, superseded by Links
	Date            string        `json:"date"`
	Status          ProjectStatus `json:"status"`
	Views           int           `json:"views"`
}
