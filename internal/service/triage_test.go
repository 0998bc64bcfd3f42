package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvkalyan/case_intelligence_system/internal/models"
	"github.com/nvkalyan/case_intelligence_system/internal/service/mocks"
	"github.com/nvkalyan/case_intelligence_system/internal/webhook"
	webhookmocks "github.com/nvkalyan/case_intelligence_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedNow pins the triage clock so window boundaries are deterministic
var fixedNow = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

func newTestTriageService(t *testing.T, now time.Time) (*triageService, *mocks.MockCaseRepository, *webhookmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCaseRepository(ctrl)
	publisher := webhookmocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := &triageService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		policy:    defaultPolicy{},
		now:       func() time.Time { return now },
	}
	return svc, repo, publisher
}

func TestEvaluateCase_DaysPending(t *testing.T) {
	record := models.CaseRecord{
		CaseNumber: "FIR-2026-001",
		CreatedAt:  "2026-08-22T12:00:00Z",
	}

	result := EvaluateCase(record, defaultPolicy{}, fixedNow)

	assert.True(t, result.NeedsAttention)
	require.NotNil(t, result.DaysPending)
	assert.Equal(t, 10, *result.DaysPending)
}

func TestEvaluateCase_AbsentCreatedAt(t *testing.T) {
	record := models.CaseRecord{
		CaseNumber: "FIR-2026-002",
		CreatedAt:  "",
	}

	result := EvaluateCase(record, defaultPolicy{}, fixedNow)

	assert.True(t, result.NeedsAttention)
	// Missing created_at stays nil, it is never coerced to zero
	assert.Nil(t, result.DaysPending)
}

func TestEvaluateCase_MalformedCreatedAt(t *testing.T) {
	record := models.CaseRecord{
		CaseNumber: "FIR-2026-003",
		CreatedAt:  "not-a-timestamp",
	}

	result := EvaluateCase(record, defaultPolicy{}, fixedNow)

	assert.True(t, result.NeedsAttention)
	assert.Nil(t, result.DaysPending)
}

func TestEvaluateCase_NilPolicyDefaultsTrue(t *testing.T) {
	result := EvaluateCase(models.CaseRecord{}, nil, fixedNow)
	assert.True(t, result.NeedsAttention)
}

func TestEvaluateCase_PolicyDecides(t *testing.T) {
	ctrl := gomock.NewController(t)
	policy := mocks.NewMockAnalysisPolicy(ctrl)

	record := models.CaseRecord{CaseNumber: "FIR-2026-004"}
	policy.EXPECT().NeedsAttention(record).Return(false).Times(1)

	result := EvaluateCase(record, policy, fixedNow)
	assert.False(t, result.NeedsAttention)
}

func TestPendingCases_WindowFiltering(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	// 30 days back from 2026-09-01, truncated to midnight UTC
	cutoff := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	records := []models.CaseRecord{
		{CaseNumber: "FIR-IN", IncidentDate: "2026-08-15", CreatedAt: "2026-08-15T10:00:00Z"},
		{CaseNumber: "FIR-BOUNDARY", IncidentDate: "2026-08-02", CreatedAt: "2026-08-02T08:00:00Z"},
		{CaseNumber: "FIR-OUT", IncidentDate: "2026-08-01", CreatedAt: "2026-08-01T08:00:00Z"},
		{CaseNumber: "FIR-BADDATE", IncidentDate: "not-a-date", CreatedAt: "2026-08-20T08:00:00Z"},
	}

	repo.EXPECT().ListIncidentsSince(gomock.Any(), cutoff).Return(records, nil).Times(1)

	pending, err := svc.PendingCases(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "FIR-IN", pending[0].CaseNumber)
	assert.Equal(t, "FIR-BOUNDARY", pending[1].CaseNumber)

	// Timestamps come back normalized to ISO-8601 UTC
	assert.Equal(t, "2026-08-15T00:00:00Z", pending[0].IncidentDate)
	assert.Equal(t, "2026-08-15T10:00:00Z", pending[0].CreatedAt)

	require.NotNil(t, pending[0].DaysPending)
	assert.Equal(t, 17, *pending[0].DaysPending)
	assert.True(t, pending[0].Analysis.NeedsAttention)
}

func TestPendingCases_AttentionPolicyFilters(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	ctrl := gomock.NewController(t)
	policy := mocks.NewMockAnalysisPolicy(ctrl)
	svc.policy = policy

	records := []models.CaseRecord{
		{CaseNumber: "FIR-KEEP", IncidentDate: "2026-08-20", CreatedAt: "2026-08-20T08:00:00Z"},
		{CaseNumber: "FIR-SKIP", IncidentDate: "2026-08-21", CreatedAt: "2026-08-21T08:00:00Z"},
	}

	repo.EXPECT().ListIncidentsSince(gomock.Any(), gomock.Any()).Return(records, nil).Times(1)
	policy.EXPECT().NeedsAttention(gomock.Any()).DoAndReturn(func(record models.CaseRecord) bool {
		return record.CaseNumber == "FIR-KEEP"
	}).Times(2)

	pending, err := svc.PendingCases(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "FIR-KEEP", pending[0].CaseNumber)
}

func TestPendingCases_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	repo.EXPECT().ListIncidentsSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	_, err := svc.PendingCases(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not list pending cases")
}

func TestRecentUpdates_WindowFiltering(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	// 7 days back from 2026-09-01, truncated to midnight UTC
	cutoff := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	records := []models.CaseRecord{
		{CaseNumber: "FIR-IN", IncidentType: "Robbery", UpdatedAt: "2026-08-30T12:00:00Z", InvestigatingOfficer: "Insp. Rao"},
		{CaseNumber: "FIR-BOUNDARY", IncidentType: "Theft", UpdatedAt: "2026-08-25T00:00:00Z"},
		{CaseNumber: "FIR-OUT", IncidentType: "Fraud", UpdatedAt: "2026-08-20T12:00:00Z"},
		{CaseNumber: "FIR-BADTS", IncidentType: "Theft", UpdatedAt: "garbage"},
	}

	repo.EXPECT().ListUpdatedSince(gomock.Any(), cutoff).Return(records, nil).Times(1)

	updates, err := svc.RecentUpdates(context.Background())
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "FIR-IN", updates[0].CaseNumber)
	assert.Equal(t, "2026-08-30T12:00:00Z", updates[0].LastUpdated)
	assert.Equal(t, "Modified", updates[0].UpdateType)
	assert.Equal(t, "Insp. Rao", updates[0].Officer)
	assert.Equal(t, "FIR-BOUNDARY", updates[1].CaseNumber)
}

func TestRecentUpdates_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	repo.EXPECT().ListUpdatedSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	_, err := svc.RecentUpdates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not list case updates")
}

func TestListCases_ClampsPaging(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	repo.EXPECT().ListCases(gomock.Any(), 1, 20).Return([]models.CaseRecord{}, nil).Times(1)

	_, err := svc.ListCases(context.Background(), 0, 500)
	require.NoError(t, err)
}

func TestGetCase_CacheHit(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)
	cached := &models.CaseRecord{CaseNumber: "FIR-2026-001", Status: "Open"}

	repo.EXPECT().GetCaseFromCache(gomock.Any(), "FIR-2026-001").Return(cached, nil).Times(1)
	repo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Times(0)

	record, err := svc.GetCase(context.Background(), "FIR-2026-001")
	require.NoError(t, err)
	assert.Equal(t, cached, record)
}

func TestGetCase_CacheMiss(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)
	stored := &models.CaseRecord{CaseNumber: "FIR-2026-001", Status: "Open"}

	repo.EXPECT().GetCaseFromCache(gomock.Any(), "FIR-2026-001").Return(nil, nil).Times(1)
	repo.EXPECT().GetByNumber(gomock.Any(), "FIR-2026-001").Return(stored, nil).Times(1)
	repo.EXPECT().SetCaseCache(gomock.Any(), stored).Return(nil).Times(1)

	record, err := svc.GetCase(context.Background(), "FIR-2026-001")
	require.NoError(t, err)
	assert.Equal(t, stored, record)
}

func TestGetCase_NotFound(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	repo.EXPECT().GetCaseFromCache(gomock.Any(), "FIR-2026-999").Return(nil, nil).Times(1)
	repo.EXPECT().GetByNumber(gomock.Any(), "FIR-2026-999").Return(nil, errors.New("case FIR-2026-999 not found")).Times(1)

	_, err := svc.GetCase(context.Background(), "FIR-2026-999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not get case")
}

func TestUpdateCaseStatus_Success(t *testing.T) {
	svc, repo, publisher := newTestTriageService(t, fixedNow)

	repo.EXPECT().UpdateStatus(gomock.Any(), "FIR-2026-001", "Closed", "Suspect apprehended", fixedNow).Return(nil).Times(1)
	repo.EXPECT().InvalidateCaseCache(gomock.Any(), "FIR-2026-001").Return(nil).Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.CaseStatusEvent) error {
			assert.Equal(t, "FIR-2026-001", event.CaseNumber)
			assert.Equal(t, "Closed", event.Status)
			assert.Equal(t, fixedNow, event.UpdatedAt)
			return nil
		}).Times(1)

	err := svc.UpdateCaseStatus(context.Background(), "FIR-2026-001", "Closed", "Suspect apprehended")
	require.NoError(t, err)
}

func TestUpdateCaseStatus_NotFound(t *testing.T) {
	svc, repo, publisher := newTestTriageService(t, fixedNow)

	repo.EXPECT().UpdateStatus(gomock.Any(), "FIR-2026-999", "Closed", "", fixedNow).
		Return(errors.New("case FIR-2026-999 not found for status update")).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateCaseStatus(context.Background(), "FIR-2026-999", "Closed", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not update case status")
}

func TestUpdateCaseStatus_PublishFailureNotFatal(t *testing.T) {
	svc, repo, publisher := newTestTriageService(t, fixedNow)

	repo.EXPECT().UpdateStatus(gomock.Any(), "FIR-2026-001", "Closed", "", fixedNow).Return(nil).Times(1)
	repo.EXPECT().InvalidateCaseCache(gomock.Any(), "FIR-2026-001").Return(nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	// The status update succeeded; a failed event publish must not undo it
	err := svc.UpdateCaseStatus(context.Background(), "FIR-2026-001", "Closed", "")
	require.NoError(t, err)
}

func TestDashboardOverview_Success(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)
	recent := []models.CaseRecord{{CaseNumber: "FIR-2026-001"}}

	repo.EXPECT().CountByIncidentDate(gomock.Any(), "2026-09-01").Return(3, nil).Times(1)
	repo.EXPECT().CountWithoutStatus(gomock.Any()).Return(7, nil).Times(1)
	repo.EXPECT().ListRecentlyUpdated(gomock.Any(), recentActivityLimit).Return(recent, nil).Times(1)

	overview, err := svc.DashboardOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.TodayCases)
	assert.Equal(t, 7, overview.PendingCases)
	require.Len(t, overview.RecentActivity, 1)
}

func TestDashboardOverview_CountError(t *testing.T) {
	svc, repo, _ := newTestTriageService(t, fixedNow)

	repo.EXPECT().CountByIncidentDate(gomock.Any(), "2026-09-01").Return(0, errors.New("db down")).Times(1)

	_, err := svc.DashboardOverview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not build overview")
}
