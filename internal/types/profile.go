// Package types provides type definitions for structured data used throughout the jobseeker-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CareerGoals captures what a candidate is working toward.
type CareerGoals struct {
	ShortTerm           string   `json:"short_term,omitempty"`
	LongTerm            string   `json:"long_term,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	PreferredIndustries []string `json:"preferred_industries,omitempty"`
	PreferredRoles      []string `json:"preferred_roles,omitempty"`
	PreferredLocations  []string `json:"preferred_locations,omitempty"`
}

// IsZero reports whether no goal information has been recorded.
func (g *CareerGoals) IsZero() bool {
	if g == nil {
		return true
	}
	return g.ShortTerm == "" && g.LongTerm == "" && g.Notes == "" &&
		len(g.PreferredIndustries) == 0 && len(g.PreferredRoles) == 0 && len(g.PreferredLocations) == 0
}

// Profile is a candidate profile record.
type Profile struct {
	ID          uuid.UUID    `json:"id,omitempty"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	ResumeText  string       `json:"resume_text,omitempty"`
	ResumeURL   string       `json:"resume_url,omitempty"`
	CareerGoals *CareerGoals `json:"career_goals,omitempty"`
	Interests   []string     `json:"interests,omitempty"`
	Strengths   []string     `json:"strengths,omitempty"`
	Weaknesses  []string     `json:"weaknesses,omitempty"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}

// Summary renders the profile as a plain-text block suitable for prompt context.
func (p *Profile) Summary() string {
	if p == nil {
		return "No profile information yet."
	}

	var parts []string
	if p.Name != "" {
		parts = append(parts, "Name: "+p.Name)
	}
	if p.Email != "" {
		parts = append(parts, "Email: "+p.Email)
	}
	if !p.CareerGoals.IsZero() {
		goal := p.CareerGoals.Notes
		if goal == "" {
			goal = strings.TrimSpace(p.CareerGoals.ShortTerm + " " + p.CareerGoals.LongTerm)
		}
		parts = append(parts, "Career Goals: "+goal)
	}
	if len(p.Interests) > 0 {
		parts = append(parts, "Interests: "+strings.Join(p.Interests, ", "))
	}
	if len(p.Strengths) > 0 {
		parts = append(parts, "Strengths: "+strings.Join(p.Strengths, ", "))
	}
	if len(p.Weaknesses) > 0 {
		parts = append(parts, "Weaknesses: "+strings.Join(p.Weaknesses, ", "))
	}

	if len(parts) == 0 {
		return "Minimal profile information."
	}
	return strings.Join(parts, "\n")
}

// ProfileDelta holds incremental profile updates extracted from free text.
// A zero delta means nothing was recognized; that is not an error.
type ProfileDelta struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	CareerGoalNotes string   `json:"career_goal_notes,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Weaknesses      []string `json:"weaknesses,omitempty"`
}

// IsEmpty reports whether the delta carries no updates at all.
func (d ProfileDelta) IsEmpty() bool {
	return d.Name == "" && d.Email == "" && d.CareerGoalNotes == "" &&
		len(d.Interests) == 0 && len(d.Strengths) == 0 && len(d.Weaknesses) == 0
}

// Merge folds another delta into this one. Scalar fields are only taken
// from other when unset here; list fields are appended.
func (d ProfileDelta) Merge(other ProfileDelta) ProfileDelta {
	out := d
	if out.Name == "" {
		out.Name = other.Name
	}
	if out.Email == "" {
		out.Email = other.Email
	}
	if out.CareerGoalNotes == "" {
		out.CareerGoalNotes = other.CareerGoalNotes
	}
	out.Interests = append(out.Interests, other.Interests...)
	out.Strengths = append(out.Strengths, other.Strengths...)
	out.Weaknesses = append(out.Weaknesses, other.Weaknesses...)
	return out
}

// StarStory is a Situation/Task/Action/Result experience record.
type StarStory struct {
	ID        uuid.UUID `json:"id,omitempty"`
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	Situation string    `json:"situation"`
	Task      string    `json:"task"`
	Action    string    `json:"action"`
	Result    string    `json:"result"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
