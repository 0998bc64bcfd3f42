package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nvkalyan/case_intelligence_system/internal/models"
)

// Scoring policy. Semantic behavior dominates, crime type is secondary
// corroboration, location is weak corroboration. A profile qualifies only
// when its composite score is strictly above the threshold. Tunable, but
// every weight lives here and nowhere else.
const (
	weightModusOperandi = 0.6
	weightCrimeType     = 0.3
	weightLocation      = 0.1
	matchThreshold      = 0.4
)

// Matcher correlates incident descriptions against the profile registry.
type Matcher struct {
	registry *Registry
	scorer   *Scorer
}

// NewMatcher creates a Matcher over the given registry and scorer.
func NewMatcher(registry *Registry, scorer *Scorer) *Matcher {
	return &Matcher{
		registry: registry,
		scorer:   scorer,
	}
}

// FindMatches scores every registered profile against the incident text and
// returns the qualifying matches ordered by confidence, descending. Equal
// confidences keep registry order. suspectDetails is accepted for future use
// and does not affect scoring yet.
//
// If scoring fails the returned slice holds a single entry whose Error field
// describes the failure; callers must check it before treating the slice as
// match data.
func (m *Matcher) FindMatches(ctx context.Context, incidentText string, suspectDetails map[string]string) []models.MatchResult {
	_ = suspectDetails

	incidentLower := strings.ToLower(incidentText)
	matches := make([]models.MatchResult, 0)

	for _, profile := range m.registry.ListAll() {
		moScore, err := m.scorer.Score(ctx, incidentText, profile.ModusOperandi)
		if err != nil {
			return []models.MatchResult{
				{Error: fmt.Sprintf("matching failed: %v", err)},
			}
		}

		crimeMatch := anyTermInText(incidentLower, profile.CrimeTypes)
		locationMatch := anyTermInText(incidentLower, profile.PreferredLocations)

		composite := moScore * weightModusOperandi
		if crimeMatch {
			composite += weightCrimeType
		}
		if locationMatch {
			composite += weightLocation
		}

		if composite <= matchThreshold {
			continue
		}

		matches = append(matches, models.MatchResult{
			OffenderProfile: profile,
			MatchConfidence: roundOneDecimal(composite * 100),
			MatchedElements: models.MatchedElements{
				ModusOperandi:  roundOneDecimal(moScore * 100),
				CrimeTypeMatch: crimeMatch,
				LocationMatch:  locationMatch,
			},
		})
	}

	// Stable: profiles with equal confidence keep registry order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchConfidence > matches[j].MatchConfidence
	})
	return matches
}

// anyTermInText reports whether any term occurs in the lowercased text.
// A plural term also matches its singular form, so the category
// "Parking lots" matches an incident mentioning "a parking lot".
func anyTermInText(textLower string, terms []string) bool {
	for _, term := range terms {
		termLower := strings.ToLower(term)
		if strings.Contains(textLower, termLower) {
			return true
		}
		if singular, ok := strings.CutSuffix(termLower, "s"); ok && strings.Contains(textLower, singular) {
			return true
		}
	}
	return false
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
