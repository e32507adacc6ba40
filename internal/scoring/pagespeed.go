// Package scoring qualifies new leads from an externally measured site
// performance signal.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/config"
)

// Measurement errors are a valid (if degraded) scoring signal, so callers
// need to tell them apart from transport plumbing failures.
var (
	ErrSiteUnreachable = errors.New("site unreachable")
	ErrSiteTimeout     = errors.New("site timed out")
)

// PageSpeedClient measures a site's mobile performance score (0-100) via an
// external page-speed service. Calls run through a circuit breaker since the
// service is slow and rate limited.
type PageSpeedClient struct {
	cfg     config.PageSpeedConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

type pagespeedResponse struct {
	LighthouseResult struct {
		Categories struct {
			Performance struct {
				Score float64 `json:"score"`
			} `json:"performance"`
		} `json:"categories"`
	} `json:"lighthouseResult"`
}

func NewPageSpeedClient(cfg config.PageSpeedConfig, logger *zap.Logger) *PageSpeedClient {
	settings := gobreaker.Settings{
		Name:        "pagespeed-circuit-breaker",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
		Timeout:     time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.ConsecutiveFails && failureRatio >= cfg.CircuitBreaker.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// Unreachable and timed-out sites are scored, not failures of
			// the measurement service itself.
			return err == nil || errors.Is(err, ErrSiteUnreachable) || errors.Is(err, ErrSiteTimeout)
		},
	}

	return &PageSpeedClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Score measures the target URL with the mobile strategy and returns a
// 0-100 performance score. ErrSiteUnreachable / ErrSiteTimeout mean the
// target could not be measured; other errors mean the measurement service
// itself misbehaved.
func (c *PageSpeedClient) Score(ctx context.Context, targetURL string) (int, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.measure(ctx, targetURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, fmt.Errorf("pagespeed unavailable: %w", err)
		}
		return 0, err
	}

	return result.(int), nil
}

func (c *PageSpeedClient) measure(ctx context.Context, targetURL string) (int, error) {
	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("strategy", "mobile")
	params.Set("key", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create pagespeed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			return 0, ErrSiteTimeout
		}
		return 0, ErrSiteUnreachable
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// The service reports 4xx/5xx when the target itself cannot be loaded.
	if resp.StatusCode != http.StatusOK {
		return 0, ErrSiteUnreachable
	}

	var parsed pagespeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode pagespeed response: %w", err)
	}

	return int(math.Round(parsed.LighthouseResult.Categories.Performance.Score * 100)), nil
}
