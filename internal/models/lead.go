// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
)

// LeadStatus tracks a lead through the outreach lifecycle. Transitions are
// monotonic forward; in_sequence may additionally move to paused.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusScoring      LeadStatus = "scoring"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusDisqualified LeadStatus = "disqualified"
	LeadStatusInSequence   LeadStatus = "in_sequence"
	LeadStatusPaused       LeadStatus = "paused"
	LeadStatusReplied      LeadStatus = "replied"
	LeadStatusConverted    LeadStatus = "converted"
	LeadStatusBounced      LeadStatus = "bounced"
	LeadStatusUnsubscribed LeadStatus = "unsubscribed"
)

// Terminal reports whether a lead in this status must stop receiving
// scheduled messages.
func (s LeadStatus) Terminal() bool {
	switch s {
	case LeadStatusConverted, LeadStatusUnsubscribed, LeadStatusBounced, LeadStatusReplied:
		return true
	}
	return false
}

type LeadPriority string

const (
	LeadPriorityHot  LeadPriority = "hot"
	LeadPriorityWarm LeadPriority = "warm"
	LeadPriorityLow  LeadPriority = "low"
)

// Lead represents a prospect record in the database. A lead is uniquely
// identified by its non-null email or non-null phone.
type Lead struct {
	ID            int64          `db:"id" json:"id"`
	SourceID      sql.NullString `db:"source_id" json:"source_id,omitempty"`
	Email         sql.NullString `db:"email" json:"email,omitempty"`
	Phone         sql.NullString `db:"phone" json:"phone,omitempty"`
	Company       string         `db:"company" json:"company"`
	ContactName   sql.NullString `db:"contact_name" json:"contact_name,omitempty"`
	Website       sql.NullString `db:"website" json:"website,omitempty"`
	Industry      string         `db:"industry" json:"industry"`
	City          sql.NullString `db:"city" json:"city,omitempty"`
	State         sql.NullString `db:"state" json:"state,omitempty"`
	Country       sql.NullString `db:"country" json:"country,omitempty"`
	EmployeeCount sql.NullInt64  `db:"employee_count" json:"employee_count,omitempty"`
	SiteScore     sql.NullInt64  `db:"site_score" json:"site_score,omitempty"`
	SiteIssues    pq.StringArray `db:"site_issues" json:"site_issues,omitempty"`
	Priority      sql.NullString `db:"priority" json:"priority,omitempty"`
	Status        LeadStatus     `db:"status" json:"status"`
	Campaign      string         `db:"campaign" json:"campaign"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// FirstName returns the first token of the contact name, for templates.
func (l *Lead) FirstName() string {
	if !l.ContactName.Valid {
		return ""
	}
	name := strings.TrimSpace(l.ContactName.String)
	if name == "" {
		return ""
	}
	return strings.Fields(name)[0]
}
