// Package pipeline coordinates the daily outreach cycle: sourcing, scoring
// and sequence assignment in the morning run, channel dispatch in the send
// run, and the midnight counter reset.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/repository"
	"github.com/webforgehq/outreach/internal/scoring"
	"github.com/webforgehq/outreach/internal/sender"
	"github.com/webforgehq/outreach/internal/sequence"
	"github.com/webforgehq/outreach/internal/sources"
)

// ErrRunInProgress means the same pipeline action is already executing,
// either in this process or another replica holding the redis lock.
var ErrRunInProgress = errors.New("pipeline run already in progress")

// Campaign pairs a source adapter with the filters for one configured
// morning import.
type Campaign struct {
	Label   string
	Adapter sources.Adapter
	Filters sources.Filters
}

// SourceSummary reports one campaign import within a morning run.
type SourceSummary struct {
	Campaign string `json:"campaign"`
	Source   string `json:"source"`
	sources.Result
	Error string `json:"error,omitempty"`
}

// MorningSummary is the JSON body returned by the morning trigger.
type MorningSummary struct {
	RunID      string          `json:"run_id"`
	StartedAt  time.Time       `json:"started_at"`
	DurationMs int64           `json:"duration_ms"`
	Sources    []SourceSummary `json:"sources"`
	Scoring    scoring.Result  `json:"scoring"`
	Assignment sequence.Result `json:"assignment"`
	Errors     []string        `json:"errors,omitempty"`
}

// SendSummary is the JSON body returned by the send trigger.
type SendSummary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	DurationMs int64         `json:"duration_ms"`
	Email      sender.Result `json:"email"`
	SMS        sender.Result `json:"sms"`
	Errors     []string      `json:"errors,omitempty"`
}

// ResetSummary is the JSON body returned by the reset trigger.
type ResetSummary struct {
	RunID        string `json:"run_id"`
	DomainsReset int64  `json:"domains_reset"`
}

// Orchestrator owns the three pipeline actions. Each action is serialized
// through a per-action redis lock so overlapping cron fires cannot double
// process leads.
type Orchestrator struct {
	cfg         config.PipelineConfig
	campaigns   []Campaign
	scorer      *scoring.Scorer
	assigner    *sequence.Assigner
	emailSender *sender.EmailSender
	smsSender   *sender.SMSSender
	repo        repository.Repository
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewOrchestrator(
	cfg config.PipelineConfig,
	campaigns []Campaign,
	scorer *scoring.Scorer,
	assigner *sequence.Assigner,
	emailSender *sender.EmailSender,
	smsSender *sender.SMSSender,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		campaigns:   campaigns,
		scorer:      scorer,
		assigner:    assigner,
		emailSender: emailSender,
		smsSender:   smsSender,
		repo:        repo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Morning runs the import, scoring and assignment stages in order. A stage
// failure is recorded in the summary and the remaining stages still run, so
// one flaky upstream API never blocks the whole cycle.
func (o *Orchestrator) Morning(ctx context.Context) (*MorningSummary, error) {
	runID := uuid.New().String()

	release, err := o.acquireLock(ctx, "morning", runID)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	summary := &MorningSummary{
		RunID:     runID,
		StartedAt: start,
	}

	o.logger.Info("Morning run started", zap.String("runID", runID))

	for _, campaign := range o.campaigns {
		res, err := campaign.Adapter.Extract(ctx, campaign.Filters)
		src := SourceSummary{
			Campaign: campaign.Label,
			Source:   campaign.Adapter.Name(),
			Result:   res,
		}
		if err != nil {
			src.Error = err.Error()
			summary.Errors = append(summary.Errors, fmt.Sprintf("source %s: %v", campaign.Label, err))
			o.logger.Error("Campaign import failed",
				zap.String("runID", runID),
				zap.String("campaign", campaign.Label),
				zap.Error(err))
		}
		summary.Sources = append(summary.Sources, src)
	}

	summary.Scoring, err = o.scorer.Run(ctx, o.cfg.ScoreBatchSize)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("scoring: %v", err))
		o.logger.Error("Scoring stage failed",
			zap.String("runID", runID),
			zap.Error(err))
	}

	summary.Assignment, err = o.assigner.Run(o.cfg.AssignBatchSize)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("assignment: %v", err))
		o.logger.Error("Assignment stage failed",
			zap.String("runID", runID),
			zap.Error(err))
	}

	summary.DurationMs = time.Since(start).Milliseconds()

	o.logger.Info("Morning run finished",
		zap.String("runID", runID),
		zap.Int("scored", summary.Scoring.Scored),
		zap.Int("assigned", summary.Assignment.Assigned),
		zap.Int64("durationMs", summary.DurationMs))

	return summary, nil
}

// Send dispatches due messages on both channels, email first so the
// capacity-limited channel gets the freshest daily quota.
func (o *Orchestrator) Send(ctx context.Context) (*SendSummary, error) {
	runID := uuid.New().String()

	release, err := o.acquireLock(ctx, "send", runID)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	summary := &SendSummary{
		RunID:     runID,
		StartedAt: start,
	}

	o.logger.Info("Send run started", zap.String("runID", runID))

	summary.Email, err = o.emailSender.SendDue(ctx, o.cfg.SendBatchSize)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("email: %v", err))
		o.logger.Error("Email dispatch failed",
			zap.String("runID", runID),
			zap.Error(err))
	}

	summary.SMS, err = o.smsSender.SendDue(ctx, o.cfg.SendBatchSize)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("sms: %v", err))
		o.logger.Error("SMS dispatch failed",
			zap.String("runID", runID),
			zap.Error(err))
	}

	summary.DurationMs = time.Since(start).Milliseconds()

	o.logger.Info("Send run finished",
		zap.String("runID", runID),
		zap.Int("emailSent", summary.Email.Sent),
		zap.Int("smsSent", summary.SMS.Sent),
		zap.Int64("durationMs", summary.DurationMs))

	return summary, nil
}

// Reset zeroes every domain's daily sent counter. Runs at local midnight.
func (o *Orchestrator) Reset(ctx context.Context) (*ResetSummary, error) {
	runID := uuid.New().String()

	release, err := o.acquireLock(ctx, "reset", runID)
	if err != nil {
		return nil, err
	}
	defer release()

	reset, err := o.repo.Domain().ResetDailyCounters()
	if err != nil {
		return nil, fmt.Errorf("failed to reset daily counters: %w", err)
	}

	o.logger.Info("Daily counters reset",
		zap.String("runID", runID),
		zap.Int64("domains", reset))

	return &ResetSummary{
		RunID:        runID,
		DomainsReset: reset,
	}, nil
}

// acquireLock takes the per-action redis lock. The TTL backstops a crashed
// run that never releases. A nil redis client degrades to no locking, which
// single-process deployments and unit tests rely on.
func (o *Orchestrator) acquireLock(ctx context.Context, action, runID string) (func(), error) {
	if o.redisClient == nil {
		return func() {}, nil
	}

	key := "pipeline:lock:" + action
	ttl := time.Duration(o.cfg.LockTTLMinutes) * time.Minute

	ok, err := o.redisClient.SetNX(ctx, key, runID, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire %s lock: %w", action, err)
	}
	if !ok {
		return nil, ErrRunInProgress
	}

	return func() {
		if err := o.redisClient.Del(context.Background(), key).Err(); err != nil {
			o.logger.Warn("Failed to release pipeline lock",
				zap.String("action", action),
				zap.Error(err))
		}
	}, nil
}
