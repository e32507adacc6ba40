package sender

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository"
)

// ErrNoSendCapacity means every eligible domain has exhausted its daily
// limit. It gates the whole remaining batch, not a single message.
var ErrNoSendCapacity = errors.New("no sending domain has remaining daily capacity")

// Result aggregates one sender pass.
type Result struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// EmailSender dispatches due email messages through warmed, rotating
// mailboxes inside a business-hours window.
type EmailSender struct {
	repo       repository.Repository
	transport  EmailTransport
	classifier BounceClassifier
	limiter    *rate.Limiter
	location   *time.Location
	windowFrom int
	windowTo   int
	logger     *zap.Logger
}

func NewEmailSender(
	cfg config.EmailConfig,
	repo repository.Repository,
	transport EmailTransport,
	classifier BounceClassifier,
	limiter *rate.Limiter,
	logger *zap.Logger,
) (*EmailSender, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid email timezone %q: %w", cfg.Timezone, err)
	}

	return &EmailSender{
		repo:       repo,
		transport:  transport,
		classifier: classifier,
		limiter:    limiter,
		location:   loc,
		windowFrom: cfg.WindowStartHr,
		windowTo:   cfg.WindowEndHr,
		logger:     logger,
	}, nil
}

// SendDue dispatches due email messages up to batchSize. Outside the
// business-hours window it does nothing and returns zero counts.
func (s *EmailSender) SendDue(ctx context.Context, batchSize int) (Result, error) {
	var result Result

	now := time.Now()
	if !s.insideWindow(now) {
		s.logger.Info("Outside email sending window, skipping run",
			zap.Int("hour", now.In(s.location).Hour()))
		return result, nil
	}

	messages, err := s.repo.Message().ListDue(models.ChannelEmail, now, batchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list due emails: %w", err)
	}

	for _, msg := range messages {
		// A lead that converted, replied, bounced or unsubscribed
		// mid-sequence must silently stop receiving queued messages.
		if msg.LeadStatus.Terminal() {
			if err := s.repo.Message().MarkPaused(msg.ID); err != nil {
				s.logger.Error("Failed to pause message",
					zap.Int64("messageID", msg.ID),
					zap.Error(err))
			}
			result.Skipped++
			continue
		}

		// Combined sequences schedule email steps even for leads that came
		// in phone-only, so those rows carry no address. They pause rather
		// than bounce: the transport's empty-recipient error would classify
		// as a bounce and kill the lead's remaining SMS steps. Checked
		// before pickMailbox so no daily slot is burned.
		if msg.ToAddress == "" {
			if err := s.repo.Message().MarkPaused(msg.ID); err != nil {
				s.logger.Error("Failed to pause addressless email",
					zap.Int64("messageID", msg.ID),
					zap.Error(err))
			}
			result.Skipped++
			continue
		}

		mailbox, err := s.pickMailbox()
		if err != nil {
			if errors.Is(err, ErrNoSendCapacity) {
				// Hard gate: nothing left to send with today.
				s.logger.Warn("Email capacity exhausted, stopping batch",
					zap.Int("remaining", len(messages)-result.Sent-result.Failed-result.Skipped))
				return result, nil
			}
			return result, err
		}

		s.dispatch(ctx, msg, mailbox, &result)

		if err := s.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *EmailSender) dispatch(ctx context.Context, msg *models.DueMessage, mailbox string, result *Result) {
	err := s.transport.Send(ctx, EmailRequest{
		From:    mailbox,
		To:      msg.ToAddress,
		Subject: msg.Subject.String,
		HTML:    msg.BodyHTML.String,
		Text:    msg.BodyText,
	})
	if err == nil {
		if markErr := s.repo.Message().MarkSent(msg.ID, mailbox); markErr != nil {
			s.logger.Error("Failed to mark email sent",
				zap.Int64("messageID", msg.ID),
				zap.Error(markErr))
		}
		result.Sent++
		s.logger.Info("Email sent",
			zap.Int64("messageID", msg.ID),
			zap.Int64("leadID", msg.LeadID),
			zap.Int("step", msg.Step),
			zap.String("from", mailbox),
			zap.String("transport", s.transport.Name()))
		return
	}

	result.Failed++
	if s.classifier.Classify(err) == OutcomeBounce {
		// A bounce halts the lead's whole sequence via the pre-send
		// consent check on later steps.
		if markErr := s.repo.Message().MarkBounced(msg.ID, err.Error()); markErr != nil {
			s.logger.Error("Failed to mark email bounced",
				zap.Int64("messageID", msg.ID),
				zap.Error(markErr))
		}
		if leadErr := s.repo.Lead().UpdateStatus(msg.LeadID, models.LeadStatusBounced); leadErr != nil {
			s.logger.Error("Failed to mark lead bounced",
				zap.Int64("leadID", msg.LeadID),
				zap.Error(leadErr))
		}
		s.logger.Warn("Email bounced",
			zap.Int64("messageID", msg.ID),
			zap.Int64("leadID", msg.LeadID),
			zap.Error(err))
		return
	}

	if markErr := s.repo.Message().MarkFailed(msg.ID, err.Error()); markErr != nil {
		s.logger.Error("Failed to mark email failed",
			zap.Int64("messageID", msg.ID),
			zap.Error(markErr))
	}
	s.logger.Warn("Email send failed",
		zap.Int64("messageID", msg.ID),
		zap.Error(err))
}

// pickMailbox takes the least-loaded eligible domain and consumes one of
// its daily slots. The slot is consumed before dispatch, so a failed send
// still burns quota; overselling the limit is the worse failure mode.
func (s *EmailSender) pickMailbox() (string, error) {
	domains, err := s.repo.Domain().ListEligible()
	if err != nil {
		return "", fmt.Errorf("failed to list eligible domains: %w", err)
	}

	for _, domain := range domains {
		if len(domain.Mailboxes) == 0 {
			continue
		}
		ok, err := s.repo.Domain().ConsumeDailySlot(domain.ID)
		if err != nil {
			return "", fmt.Errorf("failed to consume daily slot: %w", err)
		}
		if ok {
			return domain.Mailbox(), nil
		}
	}

	return "", ErrNoSendCapacity
}

func (s *EmailSender) insideWindow(now time.Time) bool {
	hour := now.In(s.location).Hour()
	return hour >= s.windowFrom && hour < s.windowTo
}
