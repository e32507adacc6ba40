package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/repository"
)

// PlacesAdapter imports leads from a maps-style business text search.
// Places results rarely carry an email, so this adapter additionally scans
// each candidate's website for one before falling back to info@<domain>.
type PlacesAdapter struct {
	cfg      config.PlacesConfig
	importer *importer
	finder   *EmailFinder
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
}

type placesResponse struct {
	Results       []placeRecord `json:"results"`
	NextPageToken string        `json:"next_page_token"`
	Status        string        `json:"status"`
}

type placeRecord struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Website          string   `json:"website"`
	FormattedPhone   string   `json:"formatted_phone_number"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
}

func NewPlacesAdapter(cfg config.PlacesConfig, repo repository.Repository, limiter *rate.Limiter, logger *zap.Logger) *PlacesAdapter {
	return &PlacesAdapter{
		cfg:      cfg,
		importer: newImporter(repo, logger),
		finder:   NewEmailFinder(6 * time.Second),
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		limiter: limiter,
		logger:  logger,
	}
}

func (a *PlacesAdapter) Name() string {
	return "places"
}

func (a *PlacesAdapter) Extract(ctx context.Context, filters Filters) (Result, error) {
	var result Result

	if a.cfg.APIKey == "" {
		result.Errors++
		return result, fmt.Errorf("places adapter: api key is not configured")
	}

	pageToken := ""
	for result.Imported < filters.Limit {
		resp, err := a.search(ctx, filters, pageToken)
		if err != nil {
			a.logger.Error("Places search failed",
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

			candidate := Candidate{
				SourceID:    rec.PlaceID,
				Company:     rec.Name,
				Website:     rec.Website,
				Phone:       rec.FormattedPhone,
				IndustryRaw: industryTag(rec.Types, filters.Industry),
				City:        filters.City,
				Country:     filters.Country,
			}

			// Best-effort email discovery; a scrape failure must not
			// abort the run.
			if website, ok := NormalizeWebsite(rec.Website); ok {
				candidate.Email = a.finder.Discover(ctx, website)
			}

			imported, err := a.importer.importCandidate(candidate, filters.Campaign)
			if err != nil {
				a.logger.Warn("Failed to import places candidate",
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

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken

		if err := a.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (a *PlacesAdapter) search(ctx context.Context, filters Filters, pageToken string) (*placesResponse, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s in %s", filters.Industry, filters.City))
	params.Set("key", a.cfg.APIKey)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create places request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var parsed placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if parsed.Status != "" && parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places returned status %q", parsed.Status)
	}

	return &parsed, nil
}

// industryTag picks the most descriptive external tag for taxonomy mapping.
func industryTag(types []string, fallback string) string {
	for _, t := range types {
		if t != "point_of_interest" && t != "establishment" {
			return strings.ReplaceAll(t, "_", " ")
		}
	}
	return fallback
}
