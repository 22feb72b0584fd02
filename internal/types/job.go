//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// JobSource records how a job entered the system.
type JobSource string

// Job source values.
const (
	JobSourceManual JobSource = "manual"
	JobSourceSearch JobSource = "search"
)

// JobStatus tracks an application's progress for a job.
type JobStatus string

// Job status values.
const (
	JobStatusInterested   JobStatus = "interested"
	JobStatusApplied      JobStatus = "applied"
	JobStatusInterviewing JobStatus = "interviewing"
	JobStatusRejected     JobStatus = "rejected"
	JobStatusOffered      JobStatus = "offered"
)

// Job is a job posting record.
type Job struct {
	ID          uuid.UUID `json:"id,omitempty"`
	ProfileID   uuid.UUID `json:"profile_id,omitempty"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	CompanyID   uuid.UUID `json:"company_id,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Location    string    `json:"location,omitempty"`
	SalaryRange string    `json:"salary_range,omitempty"`
	Source      JobSource `json:"source,omitempty"`
	Status      JobStatus `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}
