package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nvkalyan/case_intelligence_system/internal/models"
	"github.com/nvkalyan/case_intelligence_system/internal/temporal"
	"github.com/nvkalyan/case_intelligence_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=triage.go -destination=mocks/mock_triage.go -package=mocks

// Triage windows. A case is pending while its incident date falls inside the
// trailing 30 days (day 30 inclusive); an update is recent inside the
// trailing 7 days. Both boundaries are midnight UTC of the cutoff day.
const (
	pendingWindowDays      = 30
	recentUpdateWindowDays = 7
	recentActivityLimit    = 5
)

// CaseRepository defines the contract toward the case registry collaborator.
// The triage engine only reads case rows and writes status updates decided
// by the caller.
type CaseRepository interface {
	ListIncidentsSince(ctx context.Context, cutoff time.Time) ([]models.CaseRecord, error)
	ListUpdatedSince(ctx context.Context, cutoff time.Time) ([]models.CaseRecord, error)
	ListCases(ctx context.Context, page, pageSize int) ([]models.CaseRecord, error)
	GetByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error)
	UpdateStatus(ctx context.Context, caseNumber, status, notes string, updatedAt time.Time) error
	CountByIncidentDate(ctx context.Context, date string) (int, error)
	CountWithoutStatus(ctx context.Context) (int, error)
	ListRecentlyUpdated(ctx context.Context, limit int) ([]models.CaseRecord, error)
	GetCaseFromCache(ctx context.Context, caseNumber string) (*models.CaseRecord, error)
	SetCaseCache(ctx context.Context, record *models.CaseRecord) error
	InvalidateCaseCache(ctx context.Context, caseNumber string) error
}

// AnalysisPolicy decides whether a case needs investigator attention. The
// engine does not define the heuristic; under uncertainty the answer is
// always "yes" so cases surface rather than hide.
type AnalysisPolicy interface {
	NeedsAttention(record models.CaseRecord) bool
}

// defaultPolicy flags every case.
type defaultPolicy struct{}

func (defaultPolicy) NeedsAttention(models.CaseRecord) bool { return true }

// TriageService defines the business logic contract for case triage.
type TriageService interface {
	PendingCases(ctx context.Context) ([]models.PendingCase, error)
	RecentUpdates(ctx context.Context) ([]models.CaseUpdate, error)
	ListCases(ctx context.Context, page, pageSize int) ([]models.CaseRecord, error)
	GetCase(ctx context.Context, caseNumber string) (*models.CaseRecord, error)
	UpdateCaseStatus(ctx context.Context, caseNumber, status, notes string) error
	DashboardOverview(ctx context.Context) (*models.DashboardOverview, error)
}

type triageService struct {
	repo      CaseRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
	policy    AnalysisPolicy
	now       func() time.Time
}

func NewTriageService(repo CaseRepository, logger *logrus.Logger, publisher webhook.Publisher, policy AnalysisPolicy) TriageService {
	if policy == nil {
		policy = defaultPolicy{}
	}
	return &triageService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		policy:    policy,
		now:       time.Now,
	}
}

// EvaluateCase computes the triage result for one case at the given instant.
// DaysPending stays nil when created_at does not normalize; it is never
// substituted with zero.
func EvaluateCase(record models.CaseRecord, policy AnalysisPolicy, now time.Time) models.TriageResult {
	result := models.TriageResult{NeedsAttention: true}
	if policy != nil {
		result.NeedsAttention = policy.NeedsAttention(record)
	}

	if created := temporal.Normalize(record.CreatedAt, temporal.ModeInstant); created.Valid {
		days := int(now.UTC().Sub(created.Time).Hours() / 24)
		result.DaysPending = &days
	}
	return result
}

// PendingCases returns the attention-worthy cases whose incident date lies
// inside the pending window.
func (s *triageService) PendingCases(ctx context.Context) ([]models.PendingCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "triage",
		"method":  "PendingCases",
	})
	log.Info("Collecting pending cases")

	// One "now" for every window comparison in this call
	now := s.now().UTC()
	cutoff := midnightUTC(now.AddDate(0, 0, -pendingWindowDays))

	records, err := s.repo.ListIncidentsSince(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list pending cases: %w", err)
	}

	pending := make([]models.PendingCase, 0)
	for _, record := range records {
		incident := temporal.Normalize(record.IncidentDate, temporal.ModeDateOnly)
		if !incident.Valid || incident.Time.Before(cutoff) {
			continue
		}
		record.IncidentDate = incident.ISO()

		created := temporal.Normalize(record.CreatedAt, temporal.ModeInstant)
		if created.Valid {
			record.CreatedAt = created.ISO()
		}
		if updated := temporal.Normalize(record.UpdatedAt, temporal.ModeInstant); updated.Valid {
			record.UpdatedAt = updated.ISO()
		}

		analysis := EvaluateCase(record, s.policy, now)
		if !analysis.NeedsAttention {
			continue
		}

		pending = append(pending, models.PendingCase{
			CaseRecord:  record,
			Analysis:    analysis,
			DaysPending: analysis.DaysPending,
		})
	}

	log.WithField("count", len(pending)).Info("Pending cases collected")
	return pending, nil
}

// RecentUpdates returns the cases updated inside the recent-updates window.
func (s *triageService) RecentUpdates(ctx context.Context) ([]models.CaseUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "triage",
		"method":  "RecentUpdates",
	})
	log.Info("Collecting recent case updates")

	now := s.now().UTC()
	cutoff := midnightUTC(now.AddDate(0, 0, -recentUpdateWindowDays))

	records, err := s.repo.ListUpdatedSince(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to list updated cases from repository")
		return nil, fmt.Errorf("service: could not list case updates: %w", err)
	}

	updates := make([]models.CaseUpdate, 0)
	for _, record := range records {
		updated := temporal.Normalize(record.UpdatedAt, temporal.ModeInstant)
		if !updated.Valid || updated.Time.Before(cutoff) {
			continue
		}

		updates = append(updates, models.CaseUpdate{
			CaseNumber:   record.CaseNumber,
			IncidentType: record.IncidentType,
			LastUpdated:  updated.ISO(),
			UpdateType:   "Modified",
			Officer:      record.InvestigatingOfficer,
		})
	}

	log.WithField("count", len(updates)).Info("Recent updates collected")
	return updates, nil
}

// ListCases returns a page of case records, newest first.
func (s *triageService) ListCases(ctx context.Context, page, pageSize int) ([]models.CaseRecord, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "triage",
		"method":    "ListCases",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing cases")

	records, err := s.repo.ListCases(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}

	log.WithField("count", len(records)).Info("Cases listed")
	return records, nil
}

// GetCase fetches a single case, cache first.
func (s *triageService) GetCase(ctx context.Context, caseNumber string) (*models.CaseRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "GetCase",
		"case_number": caseNumber,
	})
	log.Info("Fetching case")

	cached, err := s.repo.GetCaseFromCache(ctx, caseNumber)
	if err != nil {
		log.WithError(err).Warn("Case cache lookup failed")
	}
	if cached != nil {
		log.Info("Case served from cache")
		return cached, nil
	}

	record, err := s.repo.GetByNumber(ctx, caseNumber)
	if err != nil {
		log.WithError(err).Error("Failed to get case from repository")
		return nil, fmt.Errorf("service: could not get case: %w", err)
	}

	if err := s.repo.SetCaseCache(ctx, record); err != nil {
		log.WithError(err).Warn("Failed to cache case")
	}

	log.Info("Case fetched successfully")
	return record, nil
}

// UpdateCaseStatus sets the status and investigation notes of a case and
// publishes a status event for webhook delivery.
func (s *triageService) UpdateCaseStatus(ctx context.Context, caseNumber, status, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "UpdateCaseStatus",
		"case_number": caseNumber,
		"status":      status,
	})
	log.Info("Updating case status")

	updatedAt := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, caseNumber, status, notes, updatedAt); err != nil {
		log.WithError(err).Error("Failed to update case status in repository")
		return fmt.Errorf("service: could not update case status: %w", err)
	}

	if err := s.repo.InvalidateCaseCache(ctx, caseNumber); err != nil {
		log.WithError(err).Warn("Failed to invalidate case cache")
	}

	event := webhook.NewCaseStatusEvent(caseNumber, status, notes, updatedAt)
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Delivery is best effort; the status update itself succeeded
		log.WithError(err).Error("Failed to publish case status event")
	}

	log.Info("Case status updated successfully")
	return nil
}

// DashboardOverview aggregates the headline dashboard numbers.
func (s *triageService) DashboardOverview(ctx context.Context) (*models.DashboardOverview, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "triage",
		"method":  "DashboardOverview",
	})
	log.Info("Building dashboard overview")

	now := s.now().UTC()

	todayCount, err := s.repo.CountByIncidentDate(ctx, now.Format("2006-01-02"))
	if err != nil {
		log.WithError(err).Error("Failed to count today's cases")
		return nil, fmt.Errorf("service: could not build overview: %w", err)
	}

	pendingCount, err := s.repo.CountWithoutStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count cases without status")
		return nil, fmt.Errorf("service: could not build overview: %w", err)
	}

	recent, err := s.repo.ListRecentlyUpdated(ctx, recentActivityLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list recently updated cases")
		return nil, fmt.Errorf("service: could not build overview: %w", err)
	}

	return &models.DashboardOverview{
		TodayCases:     todayCount,
		PendingCases:   pendingCount,
		RecentActivity: recent,
	}, nil
}

// midnightUTC truncates t to the start of its UTC day.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
