package sources

import (
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository"
)

// Candidate is one raw prospect as returned by an external source, before
// validation and normalization.
type Candidate struct {
	SourceID      string
	Company       string
	ContactName   string
	Website       string
	Phone         string
	Email         string
	IndustryRaw   string
	City          string
	State         string
	Country       string
	EmployeeCount int
}

// importer holds the per-candidate flow shared by all adapters: validate,
// normalize, dedup against leads and customers, insert.
type importer struct {
	repo   repository.Repository
	logger *zap.Logger
}

func newImporter(repo repository.Repository, logger *zap.Logger) *importer {
	return &importer{
		repo:   repo,
		logger: logger,
	}
}

// importCandidate returns true when a new lead row was created. Any
// per-candidate problem (unusable contact info, duplicate) returns false
// with a nil error; only unexpected store failures surface as errors.
func (im *importer) importCandidate(c Candidate, campaign string) (bool, error) {
	website, hasWebsite := NormalizeWebsite(c.Website)
	phone, hasPhone := NormalizePhone(c.Phone)
	email := strings.ToLower(strings.TrimSpace(c.Email))

	// A lead is unusable without at least one contact channel.
	if email == "" && !hasPhone {
		return false, nil
	}
	if !hasWebsite && email == "" && !hasPhone {
		return false, nil
	}
	if c.Company == "" {
		return false, nil
	}

	if exists, err := im.repo.Lead().ContactExists(email, phone); err != nil {
		return false, err
	} else if exists {
		return false, nil
	}

	if exists, err := im.repo.Customer().ContactExists(email, phone); err != nil {
		return false, err
	} else if exists {
		im.logger.Debug("Candidate is already a customer, skipping",
			zap.String("company", c.Company))
		return false, nil
	}

	lead := &models.Lead{
		SourceID:    nullString(c.SourceID),
		Email:       nullString(email),
		Phone:       nullString(phone),
		Company:     c.Company,
		ContactName: nullString(c.ContactName),
		Website:     nullString(website),
		Industry:    NormalizeIndustry(c.IndustryRaw),
		City:        nullString(c.City),
		State:       nullString(c.State),
		Country:     nullString(c.Country),
		Status:      models.LeadStatusNew,
		Campaign:    campaign,
	}
	if c.EmployeeCount > 0 {
		lead.EmployeeCount = sql.NullInt64{Int64: int64(c.EmployeeCount), Valid: true}
	}

	if err := im.repo.Lead().Create(lead); err != nil {
		// Lost the race against a concurrent insert; still just a duplicate.
		if errors.Is(err, repository.ErrDuplicateLead) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
