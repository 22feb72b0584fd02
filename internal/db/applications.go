package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// CreateApplication inserts a new application record.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) error {
	messages, err := json.Marshal(app.OutreachMessages)
	if err != nil {
		return fmt.Errorf("failed to marshal outreach messages: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, profile_id, cover_letter, outreach_messages, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		nullableID(app.JobID), nullableID(app.ProfileID), app.CoverLetter, messages, app.Notes, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application by ID.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	var a types.Application
	var jobID, profileID *uuid.UUID
	var messages []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, profile_id, cover_letter, outreach_messages, notes, status, applied_at, created_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &jobID, &profileID, &a.CoverLetter, &messages, &a.Notes, &a.Status, &a.AppliedAt, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if jobID != nil {
		a.JobID = *jobID
	}
	if profileID != nil {
		a.ProfileID = *profileID
	}
	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &a.OutreachMessages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outreach messages: %w", err)
		}
	}
	return &a, nil
}

// MarkApplied stamps an application as submitted.
func (db *DB) MarkApplied(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = 'applied', applied_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark application applied: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// ListApplications returns a profile's applications, newest first.
func (db *DB) ListApplications(ctx context.Context, profileID uuid.UUID, limit int) ([]types.Application, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, profile_id, cover_letter, outreach_messages, notes, status, applied_at, created_at
		 FROM applications WHERE profile_id = $1 ORDER BY created_at DESC LIMIT $2`,
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		var a types.Application
		var jobID, pID *uuid.UUID
		var messages []byte
		if err := rows.Scan(&a.ID, &jobID, &pID, &a.CoverLetter, &messages, &a.Notes, &a.Status, &a.AppliedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if jobID != nil {
			a.JobID = *jobID
		}
		if pID != nil {
			a.ProfileID = *pID
		}
		if len(messages) > 0 {
			if err := json.Unmarshal(messages, &a.OutreachMessages); err != nil {
				return nil, fmt.Errorf("failed to unmarshal outreach messages: %w", err)
			}
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// DeleteApplication removes an application record.
func (db *DB) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}
