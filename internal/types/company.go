//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// NewsItem is one news result about a company.
type NewsItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary,omitempty"`
}

// KeyPerson is a person identified at a company. A person is only retained
// when both Name and Title are known.
type KeyPerson struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Complete reports whether the record satisfies the retention invariant.
func (p KeyPerson) Complete() bool {
	return p.Name != "" && p.Title != ""
}

// ResearchBundle accumulates company research across workflow stages.
// Any field may stay empty when its producing stage failed; the bundle as a
// whole is still usable.
type ResearchBundle struct {
	CompanyName     string      `json:"company_name"`
	Website         string      `json:"website,omitempty"`
	Description     string      `json:"description,omitempty"`
	Industry        string      `json:"industry,omitempty"`
	Size            string      `json:"size,omitempty"`
	CultureNotes    string      `json:"culture_notes,omitempty"`
	RecentNews      []NewsItem  `json:"recent_news,omitempty"`
	KeyPeople       []KeyPerson `json:"key_people,omitempty"`
	ResearchSummary string      `json:"research_summary,omitempty"`
}

// Company is a stored company record.
type Company struct {
	ID               uuid.UUID   `json:"id,omitempty"`
	Name             string      `json:"name"`
	Website          string      `json:"website,omitempty"`
	Industry         string      `json:"industry,omitempty"`
	Size             string      `json:"size,omitempty"`
	Description      string      `json:"description,omitempty"`
	CultureNotes     string      `json:"culture_notes,omitempty"`
	RecentNews       []NewsItem  `json:"recent_news,omitempty"`
	KeyPeople        []KeyPerson `json:"key_people,omitempty"`
	ResearchSummary  string      `json:"research_summary,omitempty"`
	LastResearchedAt *time.Time  `json:"last_researched_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at,omitempty"`
}
