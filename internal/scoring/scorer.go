package scoring

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository"
)

// Qualification thresholds. A site scoring under hotThreshold is in serious
// trouble (hot lead); at warmThreshold and above it is good enough that the
// owner has no reason to buy a rebuild.
const (
	hotThreshold  = 40
	warmThreshold = 70
)

// Result aggregates one scoring pass.
type Result struct {
	Scored       int `json:"scored"`
	Qualified    int `json:"qualified"`
	Disqualified int `json:"disqualified"`
	Errors       int `json:"errors"`
}

// Measurer is the external page-speed dependency, satisfied by
// PageSpeedClient in production.
type Measurer interface {
	Score(ctx context.Context, targetURL string) (int, error)
}

// Scorer converts new leads into qualified or disqualified ones.
type Scorer struct {
	repo     repository.Repository
	measurer Measurer
	limiter  *rate.Limiter
	apiKey   string
	logger   *zap.Logger
}

func NewScorer(repo repository.Repository, measurer Measurer, limiter *rate.Limiter, apiKey string, logger *zap.Logger) *Scorer {
	return &Scorer{
		repo:     repo,
		measurer: measurer,
		limiter:  limiter,
		apiKey:   apiKey,
		logger:   logger,
	}
}

// Run scores a bounded batch of new leads. An unreachable or timed-out site
// still scores (as zero): a business whose site cannot even load is the
// strongest possible prospect, not a measurement failure.
func (s *Scorer) Run(ctx context.Context, batchSize int) (Result, error) {
	var result Result

	if s.apiKey == "" {
		result.Errors++
		return result, fmt.Errorf("scorer: pagespeed api key is not configured")
	}

	leads, err := s.repo.Lead().ListByStatus(models.LeadStatusNew, batchSize)
	if err != nil {
		result.Errors++
		return result, fmt.Errorf("failed to list new leads: %w", err)
	}

	for i, lead := range leads {
		if err := s.repo.Lead().UpdateStatus(lead.ID, models.LeadStatusScoring); err != nil {
			s.logger.Error("Failed to mark lead scoring",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
			result.Errors++
			continue
		}

		score, issues, err := s.measure(ctx, lead)
		if err != nil {
			// The measurement service failed, not the lead's site. Scoring
			// zero here would qualify the whole batch hot during an outage,
			// so the lead goes back to new for the next run.
			s.logger.Warn("Page-speed measurement unavailable, lead left unscored",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
			if revertErr := s.repo.Lead().UpdateStatus(lead.ID, models.LeadStatusNew); revertErr != nil {
				s.logger.Error("Failed to revert lead to new",
					zap.Int64("leadID", lead.ID),
					zap.Error(revertErr))
			}
			result.Errors++
			continue
		}
		priority, status := classify(score)

		if err := s.repo.Lead().UpdateScoring(lead.ID, score, issues, priority, status); err != nil {
			s.logger.Error("Failed to store lead score",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
			result.Errors++
			continue
		}

		result.Scored++
		if status == models.LeadStatusQualified {
			result.Qualified++
		} else {
			result.Disqualified++
		}

		s.logger.Info("Lead scored",
			zap.Int64("leadID", lead.ID),
			zap.Int("score", score),
			zap.String("priority", string(priority)),
			zap.String("status", string(status)))

		if i < len(leads)-1 {
			if err := s.limiter.Wait(ctx); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

// measure returns the lead's score plus its human-readable issue list.
// Unreachable and timed-out sites score zero; a non-nil error means the
// measurement service itself failed and the lead cannot be judged.
func (s *Scorer) measure(ctx context.Context, lead *models.Lead) (int, []string, error) {
	if !lead.Website.Valid {
		return 0, []string{"Site unreachable"}, nil
	}

	score, err := s.measurer.Score(ctx, lead.Website.String)
	if err != nil {
		switch {
		case errors.Is(err, ErrSiteTimeout):
			return 0, []string{"Site timed out"}, nil
		case errors.Is(err, ErrSiteUnreachable):
			return 0, []string{"Site unreachable"}, nil
		default:
			return 0, nil, err
		}
	}

	return score, speedIssues(score), nil
}

func speedIssues(score int) []string {
	switch {
	case score < 30:
		return []string{fmt.Sprintf("Extremely slow — %d/100", score)}
	case score < 50:
		return []string{"Slow"}
	case score < 70:
		return []string{"Below average"}
	default:
		return []string{"Could use a refresh"}
	}
}

func classify(score int) (models.LeadPriority, models.LeadStatus) {
	switch {
	case score < hotThreshold:
		return models.LeadPriorityHot, models.LeadStatusQualified
	case score < warmThreshold:
		return models.LeadPriorityWarm, models.LeadStatusQualified
	default:
		return models.LeadPriorityLow, models.LeadStatusDisqualified
	}
}
