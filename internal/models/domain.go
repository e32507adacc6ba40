package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// OutreachDomain is an email sending identity pool. A domain is eligible for
// sending only while warmup_done, is_active and daily_sent < daily_limit all
// hold. TotalSent doubles as the mailbox rotation index.
type OutreachDomain struct {
	ID              int64          `db:"id" json:"id"`
	Domain          string         `db:"domain" json:"domain"`
	Mailboxes       pq.StringArray `db:"mailboxes" json:"mailboxes"`
	WarmupDone      bool           `db:"warmup_done" json:"warmup_done"`
	DNSVerified     bool           `db:"dns_verified" json:"dns_verified"`
	IsActive        bool           `db:"is_active" json:"is_active"`
	DailyLimit      int            `db:"daily_limit" json:"daily_limit"`
	DailySent       int            `db:"daily_sent" json:"daily_sent"`
	TotalSent       int64          `db:"total_sent" json:"total_sent"`
	WarmupStartedAt sql.NullTime   `db:"warmup_started_at" json:"warmup_started_at,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Mailbox returns the rotation mailbox for the current total_sent counter.
func (d *OutreachDomain) Mailbox() string {
	if len(d.Mailboxes) == 0 {
		return ""
	}
	return d.Mailboxes[int(d.TotalSent)%len(d.Mailboxes)]
}
