// Package sources pulls raw prospect data from external directories and
// normalizes it into lead records.
package sources

import "context"

// Filters are the query parameters for one adapter run. Campaign is stamped
// onto every imported lead.
type Filters struct {
	Industry string
	City     string
	Country  string
	Limit    int
	Campaign string
}

// Result aggregates the outcome of one adapter run. Per-candidate problems
// (missing contact info, duplicates, bad data) count as Skipped; failures
// against the external source itself count as Errors and end the run.
type Result struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Adapter extracts leads from one external prospect source.
type Adapter interface {
	Name() string
	Extract(ctx context.Context, filters Filters) (Result, error)
}
