package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// CreateProfile inserts a new profile and fills in its generated fields.
func (db *DB) CreateProfile(ctx context.Context, profile *types.Profile) error {
	goals, err := marshalGoals(profile.CareerGoals)
	if err != nil {
		return err
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, email, resume_text, resume_url, career_goals, interests, strengths, weaknesses)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		profile.Name, profile.Email, profile.ResumeText, profile.ResumeURL,
		goals, profile.Interests, profile.Strengths, profile.Weaknesses,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by ID.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	var goals []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, resume_text, resume_url, career_goals, interests, strengths, weaknesses, created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.ResumeText, &p.ResumeURL, &goals,
		&p.Interests, &p.Strengths, &p.Weaknesses, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if p.CareerGoals, err = unmarshalGoals(goals); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile replaces a profile's mutable fields.
func (db *DB) UpdateProfile(ctx context.Context, profile *types.Profile) error {
	goals, err := marshalGoals(profile.CareerGoals)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET name = $1, email = $2, resume_text = $3, resume_url = $4,
		        career_goals = $5, interests = $6, strengths = $7, weaknesses = $8, updated_at = NOW()
		 WHERE id = $9`,
		profile.Name, profile.Email, profile.ResumeText, profile.ResumeURL,
		goals, profile.Interests, profile.Strengths, profile.Weaknesses, profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", profile.ID)
	}
	return nil
}

// DeleteProfile removes a profile and, via cascade, its STAR stories.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// CreateStarStory inserts a story under a profile.
func (db *DB) CreateStarStory(ctx context.Context, story *types.StarStory) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO star_stories (profile_id, situation, task, action, result, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		story.ProfileID, story.Situation, story.Task, story.Action, story.Result, story.Tags,
	).Scan(&story.ID, &story.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create star story: %w", err)
	}
	return nil
}

// ListStarStories returns all stories for a profile, oldest first.
func (db *DB) ListStarStories(ctx context.Context, profileID uuid.UUID) ([]types.StarStory, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, situation, task, action, result, tags, created_at
		 FROM star_stories WHERE profile_id = $1 ORDER BY created_at ASC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list star stories: %w", err)
	}
	defer rows.Close()

	var stories []types.StarStory
	for rows.Next() {
		var s types.StarStory
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Situation, &s.Task, &s.Action, &s.Result, &s.Tags, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan star story: %w", err)
		}
		stories = append(stories, s)
	}
	return stories, nil
}

// DeleteStarStory removes a single story.
func (db *DB) DeleteStarStory(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM star_stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete star story: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("star story not found: %s", id)
	}
	return nil
}

func marshalGoals(goals *types.CareerGoals) ([]byte, error) {
	if goals.IsZero() {
		return nil, nil
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal career goals: %w", err)
	}
	return data, nil
}

func unmarshalGoals(data []byte) (*types.CareerGoals, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var goals types.CareerGoals
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal career goals: %w", err)
	}
	return &goals, nil
}
