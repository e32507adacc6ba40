package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/repository"
)

// DirectoryAdapter pages through a B2B prospect directory API and imports
// matching businesses as leads.
type DirectoryAdapter struct {
	cfg      config.DirectoryConfig
	importer *importer
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
}

type directoryResponse struct {
	Results []directoryRecord `json:"results"`
	HasMore bool              `json:"has_more"`
}

type directoryRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Website       string `json:"website"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactName   string `json:"contact_name"`
	Industry      string `json:"industry"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	EmployeeCount int    `json:"employee_count"`
}

func NewDirectoryAdapter(cfg config.DirectoryConfig, repo repository.Repository, limiter *rate.Limiter, logger *zap.Logger) *DirectoryAdapter {
	return &DirectoryAdapter{
		cfg:      cfg,
		importer: newImporter(repo, logger),
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		limiter: limiter,
		logger:  logger,
	}
}

func (a *DirectoryAdapter) Name() string {
	return "directory"
}

// Extract pages through the directory until the filter limit is reached or
// the source is exhausted. A source-level HTTP failure aborts the run; bad
// candidates only count as skipped.
func (a *DirectoryAdapter) Extract(ctx context.Context, filters Filters) (Result, error) {
	var result Result

	if a.cfg.APIKey == "" {
		result.Errors++
		return result, fmt.Errorf("directory adapter: api key is not configured")
	}

	for page := 1; result.Imported < filters.Limit; page++ {
		resp, err := a.fetchPage(ctx, filters, page)
		if err != nil {
			a.logger.Error("Directory page fetch failed",
				zap.Int("page", page),
				zap.String("campaign", filters.Campaign),
				zap.Error(err))
			result.Errors++
			return result, err
		}

		if len(resp.Results) == 0 {
			break
		}

		for _, rec := range resp.Results {
			if result.Imported >= filters.Limit {
				break
			}

			imported, err := a.importer.importCandidate(Candidate{
				SourceID:      rec.ID,
				Company:       rec.Name,
				ContactName:   rec.ContactName,
				Website:       rec.Website,
				Phone:         rec.Phone,
				Email:         rec.Email,
				IndustryRaw:   rec.Industry,
				City:          rec.City,
				State:         rec.State,
				Country:       rec.Country,
				EmployeeCount: rec.EmployeeCount,
			}, filters.Campaign)
			if err != nil {
				a.logger.Warn("Failed to import directory candidate",
					zap.String("company", rec.Name),
					zap.Error(err))
				result.Errors++
				continue
			}
			if imported {
				result.Imported++
			} else {
				result.Skipped++
			}
		}

		if !resp.HasMore {
			break
		}

		if err := a.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (a *DirectoryAdapter) fetchPage(ctx context.Context, filters Filters, page int) (*directoryResponse, error) {
	params := url.Values{}
	params.Set("industry", filters.Industry)
	params.Set("city", filters.City)
	params.Set("country", filters.Country)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(a.cfg.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory request: %w", err)
	}
	req.Header.Set("X-Api-Key", a.cfg.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var parsed directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	return &parsed, nil
}
