package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type customerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// ContactExists reports whether a paying customer already holds the given
// email or phone. A lead must never be created for an existing customer.
func (r *customerRepository) ContactExists(email, phone string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM customers
			WHERE (email = $1 AND $1 <> '') OR (phone = $2 AND $2 <> '')
		)
	`

	var exists bool
	if err := r.db.Get(&exists, query, email, phone); err != nil {
		return false, fmt.Errorf("failed to check customer contact: %w", err)
	}

	return exists, nil
}
