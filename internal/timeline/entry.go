// Package timeline holds the changelog entry model and turns entries into
// timeline card markup.
package timeline

// Entry types with a dedicated visual class. Any other value renders with the
// default class.
const (
	TypeFeature      = "feature"
	TypeAnnouncement = "announcement"
	TypeHot          = "hot"
	TypeDefault      = "default"
)

// Entry is one changelog record as stored in a data source file.
type Entry struct {
	Date    string   `json:"date"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Version string   `json:"version,omitempty"`
}
