package service

import (
	"context"

	"github.com/nvkalyan/case_intelligence_system/internal/matcher"
	"github.com/nvkalyan/case_intelligence_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=matcher.go -destination=mocks/mock_matcher_service.go -package=mocks

// MatcherService defines the business logic contract for correlating
// incidents against known offender profiles.
type MatcherService interface {
	FindMatches(ctx context.Context, incidentText string, suspectDetails map[string]string) []models.MatchResult
	ListProfiles(ctx context.Context) []models.OffenderProfile
	RegisterProfile(ctx context.Context, profile models.OffenderProfile) models.OffenderProfile
	SearchProfiles(ctx context.Context, term string) []models.OffenderProfile
}

type matcherService struct {
	registry *matcher.Registry
	matcher  *matcher.Matcher
	logger   *logrus.Logger
}

func NewMatcherService(registry *matcher.Registry, m *matcher.Matcher, logger *logrus.Logger) MatcherService {
	return &matcherService{
		registry: registry,
		matcher:  m,
		logger:   logger,
	}
}

// FindMatches scores the incident text against every registered profile
func (s *matcherService) FindMatches(ctx context.Context, incidentText string, suspectDetails map[string]string) []models.MatchResult {
	log := s.logger.WithFields(logrus.Fields{
		"service": "matcher",
		"method":  "FindMatches",
	})
	log.Info("Matching incident against offender profiles")

	matches := s.matcher.FindMatches(ctx, incidentText, suspectDetails)

	if len(matches) == 1 && matches[0].Error != "" {
		log.WithField("error", matches[0].Error).Warn("Matching completed with an error marker")
		return matches
	}

	log.WithField("match_count", len(matches)).Info("Matching completed")
	return matches
}

// ListProfiles returns all known offender profiles in registry order
func (s *matcherService) ListProfiles(ctx context.Context) []models.OffenderProfile {
	log := s.logger.WithFields(logrus.Fields{
		"service": "matcher",
		"method":  "ListProfiles",
	})

	profiles := s.registry.ListAll()
	log.WithField("count", len(profiles)).Info("Profiles listed")
	return profiles
}

// RegisterProfile appends a new offender profile to the registry
func (s *matcherService) RegisterProfile(ctx context.Context, profile models.OffenderProfile) models.OffenderProfile {
	log := s.logger.WithFields(logrus.Fields{
		"service": "matcher",
		"method":  "RegisterProfile",
		"name":    profile.Name,
	})

	created := s.registry.Register(profile)
	log.WithField("profile_id", created.ID).Info("Profile registered")
	return created
}

// SearchProfiles finds profiles matching the term in any searchable field
func (s *matcherService) SearchProfiles(ctx context.Context, term string) []models.OffenderProfile {
	log := s.logger.WithFields(logrus.Fields{
		"service": "matcher",
		"method":  "SearchProfiles",
		"term":    term,
	})

	results := s.registry.Search(term)
	log.WithField("count", len(results)).Info("Profile search completed")
	return results
}
