// Package warmup promotes email sending domains out of their warmup
// period. Promotion is the only way the pipeline gains email capacity, so
// the tracker runs on its own schedule, decoupled from the cron triggers.
package warmup

import (
	"time"

	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/repository"
)

type Tracker struct {
	cfg    config.WarmupConfig
	repo   repository.Repository
	logger *zap.Logger
}

func NewTracker(cfg config.WarmupConfig, repo repository.Repository, logger *zap.Logger) *Tracker {
	return &Tracker{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// Promote activates every DNS-verified domain whose warmup window has
// elapsed, granting it the starting daily limit. Returns the number of
// domains promoted.
func (t *Tracker) Promote() (int, error) {
	cutoff := time.Now().AddDate(0, 0, -t.cfg.Days)

	domains, err := t.repo.Domain().ListWarmupReady(cutoff)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, domain := range domains {
		if err := t.repo.Domain().MarkWarmupDone(domain.ID, t.cfg.DailyLimit); err != nil {
			t.logger.Error("Failed to promote domain",
				zap.String("domain", domain.Domain),
				zap.Error(err))
			continue
		}
		promoted++
		t.logger.Info("Domain warmup complete",
			zap.String("domain", domain.Domain),
			zap.Int("dailyLimit", t.cfg.DailyLimit))
	}

	return promoted, nil
}
