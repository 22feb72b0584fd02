package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// FindOrCreateCompany finds an existing company by name or creates one.
func (db *DB) FindOrCreateCompany(ctx context.Context, name string) (*types.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	company, err := db.GetCompanyByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}

	c := &types.Company{Name: name}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO companies (name) VALUES ($1) RETURNING id, created_at`,
		name,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return c, nil
}

// GetCompanyByName retrieves a company by case-insensitive name match.
func (db *DB) GetCompanyByName(ctx context.Context, name string) (*types.Company, error) {
	return db.scanCompany(db.pool.QueryRow(ctx,
		companySelect+` WHERE LOWER(name) = LOWER($1)`,
		strings.TrimSpace(name),
	))
}

// GetCompany retrieves a company by ID.
func (db *DB) GetCompany(ctx context.Context, id uuid.UUID) (*types.Company, error) {
	return db.scanCompany(db.pool.QueryRow(ctx, companySelect+` WHERE id = $1`, id))
}

// SaveResearch records the outcome of a research run on the company row.
func (db *DB) SaveResearch(ctx context.Context, companyID uuid.UUID, bundle *types.ResearchBundle) error {
	news, err := json.Marshal(bundle.RecentNews)
	if err != nil {
		return fmt.Errorf("failed to marshal news: %w", err)
	}
	people, err := json.Marshal(bundle.KeyPeople)
	if err != nil {
		return fmt.Errorf("failed to marshal key people: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE companies SET website = $1, industry = $2, size = $3, description = $4,
		        culture_notes = $5, recent_news = $6, key_people = $7, research_summary = $8,
		        last_researched_at = NOW()
		 WHERE id = $9`,
		bundle.Website, bundle.Industry, bundle.Size, bundle.Description,
		bundle.CultureNotes, news, people, bundle.ResearchSummary, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to save research: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("company not found: %s", companyID)
	}
	return nil
}

// DeleteCompany removes a company record.
func (db *DB) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("company not found: %s", id)
	}
	return nil
}

const companySelect = `SELECT id, name, website, industry, size, description, culture_notes,
	recent_news, key_people, research_summary, last_researched_at, created_at
	FROM companies`

func (db *DB) scanCompany(row pgx.Row) (*types.Company, error) {
	var c types.Company
	var news, people []byte
	err := row.Scan(&c.ID, &c.Name, &c.Website, &c.Industry, &c.Size, &c.Description,
		&c.CultureNotes, &news, &people, &c.ResearchSummary, &c.LastResearchedAt, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if len(news) > 0 {
		if err := json.Unmarshal(news, &c.RecentNews); err != nil {
			return nil, fmt.Errorf("failed to unmarshal news: %w", err)
		}
	}
	if len(people) > 0 {
		if err := json.Unmarshal(people, &c.KeyPeople); err != nil {
			return nil, fmt.Errorf("failed to unmarshal key people: %w", err)
		}
	}
	return &c, nil
}
