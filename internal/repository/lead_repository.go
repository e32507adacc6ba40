package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/webforgehq/outreach/internal/models"
)

type leadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// Create inserts a new lead. Partial unique indexes on email and phone back
// the dedup invariant; a violation comes back as ErrDuplicateLead.
func (r *leadRepository) Create(lead *models.Lead) error {
	query := `
		INSERT INTO leads (
			source_id, email, phone, company, contact_name, website, industry,
			city, state, country, employee_count, status, campaign, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query,
		lead.SourceID, lead.Email, lead.Phone, lead.Company, lead.ContactName,
		lead.Website, lead.Industry, lead.City, lead.State, lead.Country,
		lead.EmployeeCount, lead.Status, lead.Campaign, now, now,
	).Scan(&lead.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLead
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}

	lead.CreatedAt = now
	lead.UpdatedAt = now
	return nil
}

// ContactExists reports whether any lead already holds the given email or
// phone. Empty values are ignored.
func (r *leadRepository) ContactExists(email, phone string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM leads
			WHERE (email = $1 AND $1 <> '') OR (phone = $2 AND $2 <> '')
		)
	`

	var exists bool
	if err := r.db.Get(&exists, query, email, phone); err != nil {
		return false, fmt.Errorf("failed to check lead contact: %w", err)
	}

	return exists, nil
}

func (r *leadRepository) ListByStatus(status models.LeadStatus, limit int) ([]*models.Lead, error) {
	query := `
		SELECT id, source_id, email, phone, company, contact_name, website, industry,
		       city, state, country, employee_count, site_score, site_issues, priority,
		       status, campaign, created_at, updated_at
		FROM leads
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	var leads []*models.Lead
	if err := r.db.Select(&leads, query, status, limit); err != nil {
		return nil, fmt.Errorf("failed to list leads by status: %w", err)
	}

	return leads, nil
}

// ListQualified returns qualified leads, hot first, oldest first within a
// priority band.
func (r *leadRepository) ListQualified(limit int) ([]*models.Lead, error) {
	query := `
		SELECT id, source_id, email, phone, company, contact_name, website, industry,
		       city, state, country, employee_count, site_score, site_issues, priority,
		       status, campaign, created_at, updated_at
		FROM leads
		WHERE status = $1
		ORDER BY CASE priority
			WHEN 'hot' THEN 0
			WHEN 'warm' THEN 1
			ELSE 2
		END, created_at ASC
		LIMIT $2
	`

	var leads []*models.Lead
	if err := r.db.Select(&leads, query, models.LeadStatusQualified, limit); err != nil {
		return nil, fmt.Errorf("failed to list qualified leads: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) UpdateScoring(id int64, score int, issues []string, priority models.LeadPriority, status models.LeadStatus) error {
	query := `
		UPDATE leads
		SET site_score = $2,
		    site_issues = $3,
		    priority = $4,
		    status = $5,
		    updated_at = $6
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, score, pq.StringArray(issues), priority, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lead scoring: %w", err)
	}

	return nil
}

func (r *leadRepository) UpdateStatus(id int64, status models.LeadStatus) error {
	query := `
		UPDATE leads
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	return nil
}
