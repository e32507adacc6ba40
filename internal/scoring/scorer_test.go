package scoring_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/repository/mocks"
	"github.com/webforgehq/outreach/internal/scoring"
)

type stubMeasurer struct {
	score int
	err   error
}

func (s stubMeasurer) Score(ctx context.Context, targetURL string) (int, error) {
	return s.score, s.err
}

func newTestLead(id int64, website string) *models.Lead {
	lead := &models.Lead{
		ID:       id,
		Company:  "Lakeside Dental",
		Industry: "Dental & Medical",
		Status:   models.LeadStatusNew,
	}
	if website != "" {
		lead.Website = sql.NullString{String: website, Valid: true}
	}
	return lead
}

func runScorer(t *testing.T, lead *models.Lead, measurer scoring.Measurer, wantScore int, wantPriority models.LeadPriority, wantStatus models.LeadStatus) scoring.Result {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()

	mockLeadRepo.EXPECT().
		ListByStatus(models.LeadStatusNew, 20).
		Return([]*models.Lead{lead}, nil)
	mockLeadRepo.EXPECT().
		UpdateStatus(lead.ID, models.LeadStatusScoring).
		Return(nil)
	mockLeadRepo.EXPECT().
		UpdateScoring(lead.ID, wantScore, gomock.Any(), wantPriority, wantStatus).
		Return(nil)

	scorer := scoring.NewScorer(mockRepo, measurer, rate.NewLimiter(rate.Inf, 1), "test-key", zap.NewNop())

	result, err := scorer.Run(context.Background(), 20)
	require.NoError(t, err)
	return result
}

func TestScorer_Run_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		score        int
		wantPriority models.LeadPriority
		wantStatus   models.LeadStatus
	}{
		{"just under hot cutoff", 39, models.LeadPriorityHot, models.LeadStatusQualified},
		{"at hot cutoff", 40, models.LeadPriorityWarm, models.LeadStatusQualified},
		{"just under warm cutoff", 69, models.LeadPriorityWarm, models.LeadStatusQualified},
		{"at warm cutoff", 70, models.LeadPriorityLow, models.LeadStatusDisqualified},
		{"perfect site", 100, models.LeadPriorityLow, models.LeadStatusDisqualified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := newTestLead(1, "https://lakesidedental.com")
			result := runScorer(t, lead, stubMeasurer{score: tt.score}, tt.score, tt.wantPriority, tt.wantStatus)

			assert.Equal(t, 1, result.Scored)
			if tt.wantStatus == models.LeadStatusQualified {
				assert.Equal(t, 1, result.Qualified)
			} else {
				assert.Equal(t, 1, result.Disqualified)
			}
		})
	}
}

// A business with no website at all is the strongest prospect there is: it
// scores zero and qualifies hot.
func TestScorer_Run_NoWebsiteScoresZero(t *testing.T) {
	lead := newTestLead(2, "")
	result := runScorer(t, lead, stubMeasurer{score: 95}, 0, models.LeadPriorityHot, models.LeadStatusQualified)

	assert.Equal(t, 1, result.Qualified)
}

func TestScorer_Run_UnreachableSiteScoresZero(t *testing.T) {
	lead := newTestLead(3, "https://dead.example.com")
	result := runScorer(t, lead, stubMeasurer{err: scoring.ErrSiteUnreachable}, 0, models.LeadPriorityHot, models.LeadStatusQualified)

	assert.Equal(t, 1, result.Qualified)
}

func TestScorer_Run_TimeoutScoresZero(t *testing.T) {
	lead := newTestLead(4, "https://slow.example.com")
	runScorer(t, lead, stubMeasurer{err: scoring.ErrSiteTimeout}, 0, models.LeadPriorityHot, models.LeadStatusQualified)
}

// A measurement-service outage (breaker open, malformed responses) must not
// score anything: every affected lead goes back to new instead of
// qualifying hot with a zero score.
func TestScorer_Run_ServiceOutageLeavesLeadUnscored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()

	lead := newTestLead(5, "https://lakesidedental.com")

	mockLeadRepo.EXPECT().
		ListByStatus(models.LeadStatusNew, 20).
		Return([]*models.Lead{lead}, nil)
	gomock.InOrder(
		mockLeadRepo.EXPECT().UpdateStatus(lead.ID, models.LeadStatusScoring).Return(nil),
		mockLeadRepo.EXPECT().UpdateStatus(lead.ID, models.LeadStatusNew).Return(nil),
	)
	// No UpdateScoring expectation: scoring the lead would fail the test.

	scorer := scoring.NewScorer(mockRepo, stubMeasurer{err: errors.New("pagespeed unavailable: circuit breaker is open")}, rate.NewLimiter(rate.Inf, 1), "test-key", zap.NewNop())

	result, err := scorer.Run(context.Background(), 20)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, 0, result.Scored)
	assert.Equal(t, 0, result.Qualified)
}

func TestScorer_Run_MissingAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	scorer := scoring.NewScorer(mockRepo, stubMeasurer{}, rate.NewLimiter(rate.Inf, 1), "", zap.NewNop())

	result, err := scorer.Run(context.Background(), 20)

	require.Error(t, err)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, 0, result.Scored)
}
