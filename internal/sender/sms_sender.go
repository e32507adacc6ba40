package sender

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository"
)

// SMSSender dispatches due SMS messages. Phone sending uses the configured
// number pool directly; there is no warmup gating or time-of-day window on
// this channel.
type SMSSender struct {
	cfg         config.SMSConfig
	repo        repository.Repository
	transport   SMSTransport
	classifier  BounceClassifier
	limiter     *rate.Limiter
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSMSSender(
	cfg config.SMSConfig,
	repo repository.Repository,
	transport SMSTransport,
	classifier BounceClassifier,
	limiter *rate.Limiter,
	redisClient *redis.Client,
	logger *zap.Logger,
) *SMSSender {
	return &SMSSender{
		cfg:         cfg,
		repo:        repo,
		transport:   transport,
		classifier:  classifier,
		limiter:     limiter,
		redisClient: redisClient,
		logger:      logger,
	}
}

// SendDue dispatches due SMS messages up to batchSize.
func (s *SMSSender) SendDue(ctx context.Context, batchSize int) (Result, error) {
	var result Result

	if len(s.cfg.FromNumbers) == 0 {
		return result, fmt.Errorf("sms sender: no from numbers configured")
	}

	messages, err := s.repo.Message().ListDue(models.ChannelSMS, time.Now(), batchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list due sms: %w", err)
	}

	for _, msg := range messages {
		if msg.LeadStatus.Terminal() {
			if err := s.repo.Message().MarkPaused(msg.ID); err != nil {
				s.logger.Error("Failed to pause message",
					zap.Int64("messageID", msg.ID),
					zap.Error(err))
			}
			result.Skipped++
			continue
		}

		from := s.cfg.FromNumbers[int(msg.ID)%len(s.cfg.FromNumbers)]
		s.dispatch(ctx, msg, from, &result)

		if err := s.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *SMSSender) dispatch(ctx context.Context, msg *models.DueMessage, from string, result *Result) {
	sid, err := s.transport.Send(ctx, SMSRequest{
		From: from,
		To:   msg.ToAddress,
		Body: msg.BodyText,
	})
	if err == nil {
		if markErr := s.repo.Message().MarkSent(msg.ID, from); markErr != nil {
			s.logger.Error("Failed to mark sms sent",
				zap.Int64("messageID", msg.ID),
				zap.Error(markErr))
		}
		result.Sent++

		s.cacheProviderID(ctx, msg.ID, sid)

		s.logger.Info("SMS sent",
			zap.Int64("messageID", msg.ID),
			zap.Int64("leadID", msg.LeadID),
			zap.Int("step", msg.Step),
			zap.String("from", from),
			zap.String("providerID", sid))
		return
	}

	result.Failed++
	if s.classifier.Classify(err) == OutcomeBounce {
		if markErr := s.repo.Message().MarkBounced(msg.ID, err.Error()); markErr != nil {
			s.logger.Error("Failed to mark sms bounced",
				zap.Int64("messageID", msg.ID),
				zap.Error(markErr))
		}
		if leadErr := s.repo.Lead().UpdateStatus(msg.LeadID, models.LeadStatusBounced); leadErr != nil {
			s.logger.Error("Failed to mark lead bounced",
				zap.Int64("leadID", msg.LeadID),
				zap.Error(leadErr))
		}
		s.logger.Warn("SMS bounced",
			zap.Int64("messageID", msg.ID),
			zap.Int64("leadID", msg.LeadID),
			zap.Error(err))
		return
	}

	if markErr := s.repo.Message().MarkFailed(msg.ID, err.Error()); markErr != nil {
		s.logger.Error("Failed to mark sms failed",
			zap.Int64("messageID", msg.ID),
			zap.Error(markErr))
	}
	s.logger.Warn("SMS send failed",
		zap.Int64("messageID", msg.ID),
		zap.Error(err))
}

// cacheProviderID keeps the provider sid around for a day so inbound
// status callbacks can be matched back to the message row.
func (s *SMSSender) cacheProviderID(ctx context.Context, messageID int64, sid string) {
	if s.redisClient == nil || sid == "" {
		return
	}

	key := fmt.Sprintf("sms:sid:%s", sid)
	value := fmt.Sprintf("%d:%s", messageID, time.Now().Format(time.RFC3339))
	if err := s.redisClient.Set(ctx, key, value, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache sms provider id",
			zap.String("sid", sid),
			zap.Error(err))
	}
}
