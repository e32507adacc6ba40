package sequence_test

import (
	"database/sql"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository/mocks"
	"github.com/webforgehq/outreach/internal/sequence"
	"github.com/webforgehq/outreach/internal/templates"
)

func newQualifiedLead(id int64) *models.Lead {
	return &models.Lead{
		ID:          id,
		Company:     "Lakeside Dental",
		ContactName: sql.NullString{String: "Maria Gomez", Valid: true},
		Email:       sql.NullString{String: "office@lakesidedental.com", Valid: true},
		Phone:       sql.NullString{String: "+15125550143", Valid: true},
		Industry:    "Dental & Medical",
		City:        sql.NullString{String: "Austin", Valid: true},
		SiteScore:   sql.NullInt64{Int64: 23, Valid: true},
		Priority:    sql.NullString{String: "hot", Valid: true},
		Status:      models.LeadStatusQualified,
	}
}

func newAssigner(repo *mocks.MockRepository) *sequence.Assigner {
	rnd := rand.New(rand.NewSource(42))
	engine := templates.NewEngine(rnd, "https://outreach.example.com")
	return sequence.NewAssigner(repo, engine, rnd, zap.NewNop())
}

// dayGap counts whole calendar days between two schedule times, tolerant of
// the randomized hour within the morning window.
func dayGap(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

func TestAssigner_Run_SMSOnlyMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	lead := newQualifiedLead(1)

	mockDomainRepo.EXPECT().HasEligible().Return(false, nil)
	mockLeadRepo.EXPECT().ListQualified(50).Return([]*models.Lead{lead}, nil)
	mockMessageRepo.EXPECT().CountForLead(lead.ID).Return(0, nil)

	var created []*models.Message
	mockMessageRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(msgs []*models.Message) error {
			for i, msg := range msgs {
				msg.ID = int64(100 + i)
			}
			created = msgs
			return nil
		})
	mockLeadRepo.EXPECT().UpdateStatus(lead.ID, models.LeadStatusInSequence).Return(nil)

	result, err := newAssigner(mockRepo).Run(50)

	require.NoError(t, err)
	assert.Equal(t, "sms_only", result.Mode)
	assert.Equal(t, 1, result.Assigned)
	assert.Equal(t, 4, result.Messages)
	require.Len(t, created, 4)

	for i, msg := range created {
		assert.Equal(t, models.ChannelSMS, msg.Channel)
		assert.Equal(t, i+1, msg.Step)
		assert.Equal(t, "+15125550143", msg.ToAddress)
		assert.NotEmpty(t, msg.BodyText)
	}

	// Offsets 0, 2, 5, 8 days, each inside the 9:00-10:59 morning window.
	for i, wantOffset := range []int{0, 2, 5, 8} {
		assert.Equal(t, wantOffset, dayGap(created[0].ScheduledAt, created[i].ScheduledAt), "step %d scheduled on the wrong day", i+1)
		hour := created[i].ScheduledAt.Hour()
		assert.True(t, hour == 9 || hour == 10, "step %d outside the morning window", i+1)
	}
}

func TestAssigner_Run_CombinedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	lead := newQualifiedLead(2)

	mockDomainRepo.EXPECT().HasEligible().Return(true, nil)
	mockLeadRepo.EXPECT().ListQualified(50).Return([]*models.Lead{lead}, nil)
	mockMessageRepo.EXPECT().CountForLead(lead.ID).Return(0, nil)

	var created []*models.Message
	mockMessageRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(msgs []*models.Message) error {
			for i, msg := range msgs {
				msg.ID = int64(200 + i)
			}
			created = msgs
			return nil
		})

	// Email HTML gets its placeholder replaced with the real row id once the
	// insert has produced one.
	mockMessageRepo.EXPECT().
		UpdateBodyHTML(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id int64, html string) error {
			assert.NotContains(t, html, templates.MessageIDPlaceholder)
			assert.Contains(t, html, "/t/o/")
			return nil
		}).
		Times(4)
	mockLeadRepo.EXPECT().UpdateStatus(lead.ID, models.LeadStatusInSequence).Return(nil)

	result, err := newAssigner(mockRepo).Run(50)

	require.NoError(t, err)
	assert.Equal(t, "combined", result.Mode)
	assert.Equal(t, 8, result.Messages)
	require.Len(t, created, 8)

	wantChannels := []models.Channel{
		models.ChannelSMS, models.ChannelEmail, models.ChannelSMS, models.ChannelEmail,
		models.ChannelSMS, models.ChannelEmail, models.ChannelSMS, models.ChannelEmail,
	}
	wantOffsets := []int{0, 1, 2, 3, 5, 7, 8, 10}
	for i, msg := range created {
		assert.Equal(t, wantChannels[i], msg.Channel, "step %d channel", i+1)
		assert.Equal(t, wantOffsets[i], dayGap(created[0].ScheduledAt, msg.ScheduledAt), "step %d day offset", i+1)

		if msg.Channel == models.ChannelEmail {
			assert.Equal(t, "office@lakesidedental.com", msg.ToAddress)
			assert.True(t, msg.Subject.Valid)
			assert.True(t, strings.Contains(msg.BodyHTML.String, "<html>"))
		} else {
			assert.Equal(t, "+15125550143", msg.ToAddress)
		}
	}
}

// Re-running assignment must not stack a second sequence onto a lead that
// already has messages.
func TestAssigner_Run_IdempotentPerLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	lead := newQualifiedLead(3)

	mockDomainRepo.EXPECT().HasEligible().Return(false, nil)
	mockLeadRepo.EXPECT().ListQualified(50).Return([]*models.Lead{lead}, nil)
	mockMessageRepo.EXPECT().CountForLead(lead.ID).Return(4, nil)

	result, err := newAssigner(mockRepo).Run(50)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Assigned)
	assert.Equal(t, 1, result.Skipped)
}

func TestAssigner_Run_SkipsLeadWithoutPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	lead := newQualifiedLead(4)
	lead.Phone = sql.NullString{}

	mockDomainRepo.EXPECT().HasEligible().Return(false, nil)
	mockLeadRepo.EXPECT().ListQualified(50).Return([]*models.Lead{lead}, nil)

	result, err := newAssigner(mockRepo).Run(50)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Assigned)
	assert.Equal(t, 1, result.Skipped)
}

// The sequence shape is decided once per run; every lead in a batch gets the
// same mode even if domain eligibility flips mid-run.
func TestAssigner_Run_SingleModeDecisionPerRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	leads := []*models.Lead{newQualifiedLead(5), newQualifiedLead(6)}
	leads[1].Email = sql.NullString{String: "second@lead.com", Valid: true}

	// Exactly one eligibility check for the whole run.
	mockDomainRepo.EXPECT().HasEligible().Return(false, nil).Times(1)
	mockLeadRepo.EXPECT().ListQualified(50).Return(leads, nil)

	for _, lead := range leads {
		mockMessageRepo.EXPECT().CountForLead(lead.ID).Return(0, nil)
		mockLeadRepo.EXPECT().UpdateStatus(lead.ID, models.LeadStatusInSequence).Return(nil)
	}

	mockMessageRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(msgs []*models.Message) error {
			assert.Len(t, msgs, 4)
			for _, msg := range msgs {
				assert.Equal(t, models.ChannelSMS, msg.Channel)
			}
			return nil
		}).
		Times(2)

	result, err := newAssigner(mockRepo).Run(50)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Assigned)
	assert.Equal(t, 8, result.Messages)
	assert.Equal(t, "sms_only", result.Mode)
}
