package pipeline_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/models"
	"github.com/webforgehq/outreach/internal/pipeline"
	"github.com/webforgehq/outreach/internal/repository"
	"github.com/webforgehq/outreach/internal/repository/mocks"
	"github.com/webforgehq/outreach/internal/scoring"
	"github.com/webforgehq/outreach/internal/sender"
	"github.com/webforgehq/outreach/internal/sequence"
	"github.com/webforgehq/outreach/internal/sources"
	"github.com/webforgehq/outreach/internal/templates"
)

type stubAdapter struct {
	name   string
	result sources.Result
	err    error
}

func (a stubAdapter) Name() string { return a.name }

func (a stubAdapter) Extract(ctx context.Context, filters sources.Filters) (sources.Result, error) {
	return a.result, a.err
}

type noopMeasurer struct{}

func (noopMeasurer) Score(ctx context.Context, targetURL string) (int, error) { return 50, nil }

type noopEmailTransport struct{}

func (noopEmailTransport) Name() string                                       { return "noop" }
func (noopEmailTransport) Send(ctx context.Context, req sender.EmailRequest) error { return nil }

type noopSMSTransport struct{}

func (noopSMSTransport) Name() string { return "noop" }
func (noopSMSTransport) Send(ctx context.Context, req sender.SMSRequest) (string, error) {
	return "SM1", nil
}

func newOrchestrator(t *testing.T, repo repository.Repository, campaigns []pipeline.Campaign) *pipeline.Orchestrator {
	t.Helper()

	logger := zap.NewNop()
	limiter := rate.NewLimiter(rate.Inf, 1)
	rnd := rand.New(rand.NewSource(1))

	scorer := scoring.NewScorer(repo, noopMeasurer{}, limiter, "test-key", logger)
	assigner := sequence.NewAssigner(repo, templates.NewEngine(rnd, "https://outreach.example.com"), rnd, logger)

	emailCfg := config.EmailConfig{Timezone: "UTC", WindowStartHr: 0, WindowEndHr: 24}
	emailSender, err := sender.NewEmailSender(emailCfg, repo, noopEmailTransport{}, sender.NewKeywordClassifier(), limiter, logger)
	require.NoError(t, err)

	smsCfg := config.SMSConfig{FromNumbers: []string{"+15550100001"}}
	smsSender := sender.NewSMSSender(smsCfg, repo, noopSMSTransport{}, sender.NewKeywordClassifier(), limiter, nil, logger)

	return pipeline.NewOrchestrator(
		config.PipelineConfig{ScoreBatchSize: 20, AssignBatchSize: 50, SendBatchSize: 50, LockTTLMinutes: 15},
		campaigns,
		scorer,
		assigner,
		emailSender,
		smsSender,
		repo,
		nil, // no redis in unit tests, locking degrades to no-op
		logger,
	)
}

func emptyStageMocks(ctrl *gomock.Controller) *mocks.MockRepository {
	mockRepo := mocks.NewMockRepository(ctrl)
	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockDomainRepo := mocks.NewMockDomainRepository(ctrl)

	mockRepo.EXPECT().Lead().Return(mockLeadRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Domain().Return(mockDomainRepo).AnyTimes()

	mockLeadRepo.EXPECT().ListByStatus(models.LeadStatusNew, gomock.Any()).Return(nil, nil).AnyTimes()
	mockLeadRepo.EXPECT().ListQualified(gomock.Any()).Return(nil, nil).AnyTimes()
	mockDomainRepo.EXPECT().HasEligible().Return(false, nil).AnyTimes()
	mockMessageRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	mockDomainRepo.EXPECT().ResetDailyCounters().Return(int64(5), nil).AnyTimes()

	return mockRepo
}

func TestOrchestrator_Morning_AggregatesStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []pipeline.Campaign{
		{Label: "dental-austin", Adapter: stubAdapter{name: "places", result: sources.Result{Imported: 3, Skipped: 1}}},
		{Label: "roofing-dallas", Adapter: stubAdapter{name: "directory", result: sources.Result{Imported: 2}}},
	}

	orch := newOrchestrator(t, emptyStageMocks(ctrl), campaigns)

	summary, err := orch.Morning(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	require.Len(t, summary.Sources, 2)
	assert.Equal(t, "dental-austin", summary.Sources[0].Campaign)
	assert.Equal(t, 3, summary.Sources[0].Imported)
	assert.Equal(t, 2, summary.Sources[1].Imported)
	assert.Empty(t, summary.Errors)
}

// One campaign blowing up must not stop the other campaigns or the later
// stages.
func TestOrchestrator_Morning_ContainsStageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []pipeline.Campaign{
		{Label: "broken", Adapter: stubAdapter{name: "directory", err: errors.New("directory returned status 502"), result: sources.Result{Errors: 1}}},
		{Label: "working", Adapter: stubAdapter{name: "places", result: sources.Result{Imported: 4}}},
	}

	orch := newOrchestrator(t, emptyStageMocks(ctrl), campaigns)

	summary, err := orch.Morning(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Sources, 2)
	assert.NotEmpty(t, summary.Sources[0].Error)
	assert.Equal(t, 4, summary.Sources[1].Imported)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "broken")
}

func TestOrchestrator_Send_RunsBothChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch := newOrchestrator(t, emptyStageMocks(ctrl), nil)

	summary, err := orch.Send(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Zero(t, summary.Email.Sent)
	assert.Zero(t, summary.SMS.Sent)
	assert.Empty(t, summary.Errors)
}

func TestOrchestrator_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch := newOrchestrator(t, emptyStageMocks(ctrl), nil)

	summary, err := orch.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.DomainsReset)
}
