package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// CreateJob inserts a new job posting record.
func (db *DB) CreateJob(ctx context.Context, job *types.Job) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (profile_id, title, company_name, company_id, description, url, location, salary_range, source, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		nullableID(job.ProfileID), job.Title, job.CompanyName, nullableID(job.CompanyID),
		job.Description, job.URL, job.Location, job.SalaryRange, job.Source, job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var j types.Job
	var profileID, companyID *uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_id, title, company_name, company_id, description, url, location, salary_range, source, status, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &profileID, &j.Title, &j.CompanyName, &companyID, &j.Description,
		&j.URL, &j.Location, &j.SalaryRange, &j.Source, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if profileID != nil {
		j.ProfileID = *profileID
	}
	if companyID != nil {
		j.CompanyID = *companyID
	}
	return &j, nil
}

// UpdateJobStatus moves a job through the application pipeline.
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// DeleteJob removes a job posting.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// JobFilters holds optional filters for listing jobs.
type JobFilters struct {
	ProfileID   uuid.UUID
	CompanyName string
	Status      types.JobStatus
	Limit       int
}

// ListJobs retrieves jobs matching the filters, newest first.
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]types.Job, error) {
	query, args := buildJobQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var j types.Job
		var profileID, companyID *uuid.UUID
		if err := rows.Scan(&j.ID, &profileID, &j.Title, &j.CompanyName, &companyID, &j.Description,
			&j.URL, &j.Location, &j.SalaryRange, &j.Source, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if profileID != nil {
			j.ProfileID = *profileID
		}
		if companyID != nil {
			j.CompanyID = *companyID
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// buildJobQuery assembles the filtered list query and its arguments.
func buildJobQuery(filters JobFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, profile_id, title, company_name, company_id, description, url, location, salary_range, source, status, created_at, updated_at
		FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ProfileID != uuid.Nil {
		query += fmt.Sprintf(" AND profile_id = $%d", argNum)
		args = append(args, filters.ProfileID)
		argNum++
	}
	if filters.CompanyName != "" {
		query += fmt.Sprintf(" AND company_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.CompanyName+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// nullableID maps the zero UUID onto SQL NULL.
func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
