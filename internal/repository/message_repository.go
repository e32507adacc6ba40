package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/webforgehq/outreach/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) CountForLead(leadID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE lead_id = $1`

	if err := r.db.Get(&count, query, leadID); err != nil {
		return 0, fmt.Errorf("failed to count messages for lead: %w", err)
	}

	return count, nil
}

// CreateBatch inserts all messages of one lead's sequence in a single
// transaction, so a sequence is never partially created.
func (r *messageRepository) CreateBatch(msgs []*models.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO messages (
			lead_id, step, channel, to_address, subject, body_html, body_text,
			scheduled_at, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	for _, msg := range msgs {
		err := tx.QueryRow(query,
			msg.LeadID, msg.Step, msg.Channel, msg.ToAddress, msg.Subject,
			msg.BodyHTML, msg.BodyText, msg.ScheduledAt, models.MessageStatusScheduled,
			now, now,
		).Scan(&msg.ID)
		if err != nil {
			return fmt.Errorf("failed to insert message step %d: %w", msg.Step, err)
		}
		msg.Status = models.MessageStatusScheduled
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message batch: %w", err)
	}

	return nil
}

func (r *messageRepository) UpdateBodyHTML(id int64, html string) error {
	query := `
		UPDATE messages
		SET body_html = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, html, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update message body: %w", err)
	}

	return nil
}

// ListDue returns scheduled messages whose send time has arrived, joined to
// the parent lead's current status for the pre-send consent check.
func (r *messageRepository) ListDue(channel models.Channel, now time.Time, limit int) ([]*models.DueMessage, error) {
	query := `
		SELECT m.id, m.lead_id, m.step, m.channel, m.to_address, m.subject,
		       m.body_html, m.body_text, m.scheduled_at, m.status, m.from_address,
		       m.error, m.sent_at, m.created_at, m.updated_at,
		       l.status AS lead_status
		FROM messages m
		JOIN leads l ON l.id = m.lead_id
		WHERE m.status = $1 AND m.channel = $2 AND m.scheduled_at <= $3
		ORDER BY m.scheduled_at ASC
		LIMIT $4
	`

	var messages []*models.DueMessage
	err := r.db.Select(&messages, query, models.MessageStatusScheduled, channel, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) MarkSent(id int64, fromAddress string) error {
	query := `
		UPDATE messages
		SET status = $2, from_address = $3, sent_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5
	`

	now := time.Now()
	_, err := r.db.Exec(query, id, models.MessageStatusSent, fromAddress, now, models.MessageStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to mark message sent: %w", err)
	}

	return nil
}

func (r *messageRepository) MarkFailed(id int64, errMsg string) error {
	return r.markTerminal(id, models.MessageStatusFailed, errMsg)
}

func (r *messageRepository) MarkBounced(id int64, errMsg string) error {
	return r.markTerminal(id, models.MessageStatusBounced, errMsg)
}

func (r *messageRepository) MarkPaused(id int64) error {
	query := `
		UPDATE messages
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	_, err := r.db.Exec(query, id, models.MessageStatusPaused, time.Now(), models.MessageStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to mark message paused: %w", err)
	}

	return nil
}

// markTerminal moves a scheduled message into a terminal failure state. The
// status guard keeps terminal transitions one-directional.
func (r *messageRepository) markTerminal(id int64, status models.MessageStatus, errMsg string) error {
	query := `
		UPDATE messages
		SET status = $2, error = $3, updated_at = $4
		WHERE id = $1 AND status = $5
	`

	var errVal sql.NullString
	if errMsg != "" {
		errVal = sql.NullString{String: errMsg, Valid: true}
	}

	_, err := r.db.Exec(query, id, status, errVal, time.Now(), models.MessageStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to mark message %s: %w", status, err)
	}

	return nil
}
