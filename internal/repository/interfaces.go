package repository

import (
	"time"

	"github.com/webforgehq/outreach/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Lead() LeadRepository
	Customer() CustomerRepository
	Message() MessageRepository
	Domain() DomainRepository
}

// LeadRepository defines lead store operations.
type LeadRepository interface {
	// Create inserts a lead and fills in its id. A unique-constraint
	// violation on email or phone is returned as ErrDuplicateLead.
	Create(lead *models.Lead) error
	ContactExists(email, phone string) (bool, error)
	ListByStatus(status models.LeadStatus, limit int) ([]*models.Lead, error)
	// ListQualified returns qualified leads ordered hot -> warm -> low,
	// then by creation time.
	ListQualified(limit int) ([]*models.Lead, error)
	UpdateScoring(id int64, score int, issues []string, priority models.LeadPriority, status models.LeadStatus) error
	UpdateStatus(id int64, status models.LeadStatus) error
}

// CustomerRepository is the read-only view of the customer store used for
// cross-store dedup. The portal owns the table.
type CustomerRepository interface {
	ContactExists(email, phone string) (bool, error)
}

// MessageRepository defines message operations.
type MessageRepository interface {
	CountForLead(leadID int64) (int, error)
	// CreateBatch inserts all messages in one transaction and fills in ids.
	CreateBatch(msgs []*models.Message) error
	UpdateBodyHTML(id int64, html string) error
	ListDue(channel models.Channel, now time.Time, limit int) ([]*models.DueMessage, error)
	MarkSent(id int64, fromAddress string) error
	MarkFailed(id int64, errMsg string) error
	MarkBounced(id int64, errMsg string) error
	MarkPaused(id int64) error
}

// DomainRepository defines outreach sending-domain operations.
type DomainRepository interface {
	// ListEligible returns sendable domains ordered by ascending daily_sent.
	ListEligible() ([]*models.OutreachDomain, error)
	HasEligible() (bool, error)
	// ConsumeDailySlot atomically increments daily_sent and total_sent while
	// daily_sent < daily_limit. Returns false once the domain is exhausted.
	ConsumeDailySlot(id int64) (bool, error)
	ListWarmupReady(cutoff time.Time) ([]*models.OutreachDomain, error)
	MarkWarmupDone(id int64, dailyLimit int) error
	ResetDailyCounters() (int64, error)
}
