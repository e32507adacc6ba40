package models

import (
	"database/sql"
	"time"
)

type MessageStatus string

const (
	MessageStatusScheduled MessageStatus = "scheduled"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusFailed    MessageStatus = "failed"
	MessageStatusBounced   MessageStatus = "bounced"
	MessageStatusPaused    MessageStatus = "paused"
)

type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Message is one scheduled or dispatched outbound communication belonging to
// a lead's sequence. ToAddress is copied at creation time so later lead edits
// cannot corrupt an already-scheduled message. Status changes are
// one-directional; sent, failed and bounced are terminal.
type Message struct {
	ID          int64          `db:"id" json:"id"`
	LeadID      int64          `db:"lead_id" json:"lead_id"`
	Step        int            `db:"step" json:"step"`
	Channel     Channel        `db:"channel" json:"channel"`
	ToAddress   string         `db:"to_address" json:"to_address"`
	Subject     sql.NullString `db:"subject" json:"subject,omitempty"`
	BodyHTML    sql.NullString `db:"body_html" json:"body_html,omitempty"`
	BodyText    string         `db:"body_text" json:"body_text"`
	ScheduledAt time.Time      `db:"scheduled_at" json:"scheduled_at"`
	Status      MessageStatus  `db:"status" json:"status"`
	FromAddress sql.NullString `db:"from_address" json:"from_address,omitempty"`
	Error       sql.NullString `db:"error" json:"error,omitempty"`
	SentAt      sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// DueMessage is a scheduled message joined to its parent lead's current
// status, as selected by the channel senders.
type DueMessage struct {
	Message
	LeadStatus LeadStatus `db:"lead_status" json:"lead_status"`
}
