// Package sequence assigns the multi-day nurture sequence to qualified
// leads.
package sequence

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository"
	"github.com/webforgehq/outreach/internal/templates"
)

// Step is one slot in a sequence plan.
type Step struct {
	Number     int
	Channel    models.Channel
	OffsetDays int
}

// smsOnlySteps is used while no sending domain is warmed up.
var smsOnlySteps = []Step{
	{Number: 1, Channel: models.ChannelSMS, OffsetDays: 0},
	{Number: 2, Channel: models.ChannelSMS, OffsetDays: 2},
	{Number: 3, Channel: models.ChannelSMS, OffsetDays: 5},
	{Number: 4, Channel: models.ChannelSMS, OffsetDays: 8},
}

// combinedSteps interleaves SMS and email once at least one domain is
// eligible to send.
var combinedSteps = []Step{
	{Number: 1, Channel: models.ChannelSMS, OffsetDays: 0},
	{Number: 2, Channel: models.ChannelEmail, OffsetDays: 1},
	{Number: 3, Channel: models.ChannelSMS, OffsetDays: 2},
	{Number: 4, Channel: models.ChannelEmail, OffsetDays: 3},
	{Number: 5, Channel: models.ChannelSMS, OffsetDays: 5},
	{Number: 6, Channel: models.ChannelEmail, OffsetDays: 7},
	{Number: 7, Channel: models.ChannelSMS, OffsetDays: 8},
	{Number: 8, Channel: models.ChannelEmail, OffsetDays: 10},
}

// Result aggregates one assignment pass.
type Result struct {
	Assigned int    `json:"assigned"`
	Skipped  int    `json:"skipped"`
	Messages int    `json:"messages"`
	Mode     string `json:"mode"`
}

// Assigner generates the full scheduled message set for qualified leads and
// moves them into the in_sequence status.
type Assigner struct {
	repo   repository.Repository
	engine *templates.Engine
	rnd    *rand.Rand
	logger *zap.Logger
}

func NewAssigner(repo repository.Repository, engine *templates.Engine, rnd *rand.Rand, logger *zap.Logger) *Assigner {
	return &Assigner{
		repo:   repo,
		engine: engine,
		rnd:    rnd,
		logger: logger,
	}
}

// Run assigns sequences to a bounded batch of qualified leads, hot leads
// first. The SMS-only vs combined decision is made once per run so every
// lead in the batch gets the same sequence shape.
func (a *Assigner) Run(batchSize int) (Result, error) {
	var result Result

	hasDomains, err := a.repo.Domain().HasEligible()
	if err != nil {
		return result, fmt.Errorf("failed to check domain eligibility: %w", err)
	}

	steps := smsOnlySteps
	result.Mode = "sms_only"
	if hasDomains {
		steps = combinedSteps
		result.Mode = "combined"
	}

	leads, err := a.repo.Lead().ListQualified(batchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list qualified leads: %w", err)
	}

	now := time.Now()
	for _, lead := range leads {
		// Every sequence opens with SMS, so a phone number is a hard
		// requirement.
		if !lead.Phone.Valid {
			result.Skipped++
			continue
		}

		count, err := a.repo.Message().CountForLead(lead.ID)
		if err != nil {
			a.logger.Error("Failed to count lead messages",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
			result.Skipped++
			continue
		}
		if count > 0 {
			// Already sequenced on a previous run.
			result.Skipped++
			continue
		}

		msgs := a.buildMessages(lead, steps, now)
		if err := a.repo.Message().CreateBatch(msgs); err != nil {
			a.logger.Error("Failed to insert sequence",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
			result.Skipped++
			continue
		}

		a.patchTrackingIDs(msgs)

		if err := a.repo.Lead().UpdateStatus(lead.ID, models.LeadStatusInSequence); err != nil {
			a.logger.Error("Failed to move lead into sequence",
				zap.Int64("leadID", lead.ID),
				zap.Error(err))
		}

		result.Assigned++
		result.Messages += len(msgs)
	}

	return result, nil
}

func (a *Assigner) buildMessages(lead *models.Lead, steps []Step, now time.Time) []*models.Message {
	info := templates.LeadInfo{
		FirstName: lead.FirstName(),
		Company:   lead.Company,
		Industry:  lead.Industry,
		City:      lead.City.String,
		SiteScore: int(lead.SiteScore.Int64),
		Issues:    lead.SiteIssues,
	}

	msgs := make([]*models.Message, 0, len(steps))
	smsOrdinal, emailOrdinal := 0, 0
	for _, step := range steps {
		msg := &models.Message{
			LeadID:      lead.ID,
			Step:        step.Number,
			Channel:     step.Channel,
			ScheduledAt: a.scheduleFor(now, step.OffsetDays),
		}

		switch step.Channel {
		case models.ChannelSMS:
			smsOrdinal++
			msg.ToAddress = lead.Phone.String
			msg.BodyText = a.renderSMS(smsOrdinal, info)
		case models.ChannelEmail:
			emailOrdinal++
			msg.ToAddress = lead.Email.String
			email := a.renderEmail(emailOrdinal, info)
			msg.Subject = sql.NullString{String: email.Subject, Valid: true}
			msg.BodyHTML = sql.NullString{String: email.HTML, Valid: true}
			msg.BodyText = email.Text
		}

		msgs = append(msgs, msg)
	}

	return msgs
}

func (a *Assigner) renderSMS(ordinal int, info templates.LeadInfo) string {
	switch ordinal {
	case 1:
		return a.engine.SMSHook(info)
	case 2:
		return a.engine.SMSProblem(info)
	case 3:
		return a.engine.SMSSocialProof(info)
	default:
		return a.engine.SMSBreakup(info)
	}
}

func (a *Assigner) renderEmail(ordinal int, info templates.LeadInfo) templates.Email {
	switch ordinal {
	case 1:
		return a.engine.EmailProblem(info)
	case 2:
		return a.engine.EmailTopSites(info)
	case 3:
		return a.engine.EmailSocialProof(info)
	default:
		return a.engine.EmailBreakup(info)
	}
}

// scheduleFor places a step on its offset day inside a randomized morning
// window (9:00-10:59) so sends never land as one burst.
func (a *Assigner) scheduleFor(now time.Time, offsetDays int) time.Time {
	day := now.AddDate(0, 0, offsetDays)
	return time.Date(day.Year(), day.Month(), day.Day(),
		9+a.rnd.Intn(2), a.rnd.Intn(60), 0, 0, day.Location())
}

// patchTrackingIDs swaps the render-time placeholder for the real message
// row id in stored email HTML. The id is only known after insert. A failed
// patch is logged but does not undo the assignment. Only BodyHTML is
// scanned: subjects and text bodies are placeholder-free by construction
// (the engine injects tracking markup into HTML alone).
func (a *Assigner) patchTrackingIDs(msgs []*models.Message) {
	for _, msg := range msgs {
		if msg.Channel != models.ChannelEmail || !msg.BodyHTML.Valid {
			continue
		}
		if !strings.Contains(msg.BodyHTML.String, templates.MessageIDPlaceholder) {
			continue
		}

		html := strings.ReplaceAll(msg.BodyHTML.String, templates.MessageIDPlaceholder, strconv.FormatInt(msg.ID, 10))
		if err := a.repo.Message().UpdateBodyHTML(msg.ID, html); err != nil {
			a.logger.Error("Failed to patch tracking id",
				zap.Int64("messageID", msg.ID),
				zap.Error(err))
			continue
		}
		msg.BodyHTML.String = html
	}
}
