package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/webforgehq/outreach/internal/models"
)

type domainRepository struct {
	db *sqlx.DB
}

func NewDomainRepository(db *sqlx.DB) DomainRepository {
	return &domainRepository{
		db: db,
	}
}

const domainColumns = `id, domain, mailboxes, warmup_done, dns_verified, is_active,
	daily_limit, daily_sent, total_sent, warmup_started_at, created_at, updated_at`

// ListEligible returns sendable domains ordered by ascending daily_sent so
// load spreads across the pool.
func (r *domainRepository) ListEligible() ([]*models.OutreachDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM outreach_domains
		WHERE warmup_done = TRUE AND is_active = TRUE AND daily_sent < daily_limit
		ORDER BY daily_sent ASC
	`

	var domains []*models.OutreachDomain
	if err := r.db.Select(&domains, query); err != nil {
		return nil, fmt.Errorf("failed to list eligible domains: %w", err)
	}

	return domains, nil
}

func (r *domainRepository) HasEligible() (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM outreach_domains
			WHERE warmup_done = TRUE AND is_active = TRUE AND daily_sent < daily_limit
		)
	`

	var exists bool
	if err := r.db.Get(&exists, query); err != nil {
		return false, fmt.Errorf("failed to check eligible domains: %w", err)
	}

	return exists, nil
}

// ConsumeDailySlot is a conditional increment: it only succeeds while the
// domain is still under its daily limit, so overlapping sender runs cannot
// oversell capacity.
func (r *domainRepository) ConsumeDailySlot(id int64) (bool, error) {
	query := `
		UPDATE outreach_domains
		SET daily_sent = daily_sent + 1,
		    total_sent = total_sent + 1,
		    updated_at = $2
		WHERE id = $1 AND daily_sent < daily_limit
	`

	res, err := r.db.Exec(query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to consume daily slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

func (r *domainRepository) ListWarmupReady(cutoff time.Time) ([]*models.OutreachDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM outreach_domains
		WHERE warmup_done = FALSE
		  AND dns_verified = TRUE
		  AND warmup_started_at IS NOT NULL
		  AND warmup_started_at <= $1
		ORDER BY warmup_started_at ASC
	`

	var domains []*models.OutreachDomain
	if err := r.db.Select(&domains, query, cutoff); err != nil {
		return nil, fmt.Errorf("failed to list warmup-ready domains: %w", err)
	}

	return domains, nil
}

func (r *domainRepository) MarkWarmupDone(id int64, dailyLimit int) error {
	query := `
		UPDATE outreach_domains
		SET warmup_done = TRUE,
		    is_active = TRUE,
		    daily_limit = $2,
		    updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, dailyLimit, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark warmup done: %w", err)
	}

	return nil
}

// ResetDailyCounters zeroes daily_sent across the pool. Triggered once per
// day by the reset cron action.
func (r *domainRepository) ResetDailyCounters() (int64, error) {
	query := `
		UPDATE outreach_domains
		SET daily_sent = 0, updated_at = $1
		WHERE daily_sent > 0
	`

	res, err := r.db.Exec(query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily counters: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows, nil
}
