//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// OutreachMessage is a drafted outreach email. Subject is always non-empty;
// workflows substitute a generic subject when extraction comes up empty.
type OutreachMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Purpose   string `json:"purpose,omitempty"`
}

// GeneratedContent is the complete output of the content generation workflow.
// It is produced all-or-nothing: a failed sub-call fails the whole run.
type GeneratedContent struct {
	CoverLetter         string            `json:"cover_letter"`
	OutreachMessages    []OutreachMessage `json:"outreach_messages"`
	ApplicationStrategy string            `json:"application_strategy"`
}

// Application is a stored application record.
type Application struct {
	ID               uuid.UUID         `json:"id,omitempty"`
	JobID            uuid.UUID         `json:"job_id,omitempty"`
	ProfileID        uuid.UUID         `json:"profile_id,omitempty"`
	CoverLetter      string            `json:"cover_letter,omitempty"`
	OutreachMessages []OutreachMessage `json:"outreach_messages,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	Status           string            `json:"status,omitempty"`
	AppliedAt        *time.Time        `json:"applied_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at,omitempty"`
}
