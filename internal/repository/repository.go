// Package repository provides data access over the leads, customers,
// messages and outreach_domains tables.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateLead is returned when an insert collides with an existing
// lead's email or phone. Callers treat it as a benign skip.
var ErrDuplicateLead = errors.New("lead with this email or phone already exists")

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db       *sqlx.DB
	lead     LeadRepository
	customer CustomerRepository
	message  MessageRepository
	domain   DomainRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:       db,
		lead:     NewLeadRepository(db),
		customer: NewCustomerRepository(db),
		message:  NewMessageRepository(db),
		domain:   NewDomainRepository(db),
	}
}

func (r *repositoryImpl) Lead() LeadRepository {
	return r.lead
}

func (r *repositoryImpl) Customer() CustomerRepository {
	return r.customer
}

func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

func (r *repositoryImpl) Domain() DomainRepository {
	return r.domain
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
