package matcher

import (
	"strings"
	"sync"

	"github.com/nvkalyan/case_intelligence_system/internal/models"
)

// Registry is an in-memory, append-only store of offender profiles. Profiles
// are never deleted, so sequential IDs are never reused. Register is the only
// writer; concurrent readers are safe.
type Registry struct {
	mu       sync.RWMutex
	profiles []models.OffenderProfile
}

// NewRegistry creates a Registry seeded with the known offender profiles.
func NewRegistry() *Registry {
	return &Registry{profiles: seedProfiles()}
}

// NewEmptyRegistry creates a Registry with no profiles.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register assigns the next sequential ID to the profile and appends it.
func (r *Registry) Register(profile models.OffenderProfile) models.OffenderProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.ID = int64(len(r.profiles)) + 1
	r.profiles = append(r.profiles, profile)
	return profile
}

// ListAll returns all profiles in insertion order.
func (r *Registry) ListAll() []models.OffenderProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.OffenderProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Search returns the profiles whose name, modus operandi, crime types,
// preferred locations or physical description contain the term,
// case-insensitive, in registry order. No ranking is applied.
func (r *Registry) Search(term string) []models.OffenderProfile {
	term = strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.OffenderProfile, 0)
	for _, profile := range r.profiles {
		fields := []string{
			profile.Name,
			profile.ModusOperandi,
			strings.Join(profile.CrimeTypes, " "),
			strings.Join(profile.PreferredLocations, " "),
			profile.PhysicalDescription,
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), term) {
				results = append(results, profile)
				break
			}
		}
	}
	return results
}

// seedProfiles is the initial set of known offender profiles.
func seedProfiles() []models.OffenderProfile {
	return []models.OffenderProfile{
		{
			ID:                  1,
			Name:                "Unknown Suspect A",
			ModusOperandi:       "Uses motorcycle for quick getaways, targets isolated areas",
			PreferredLocations:  []string{"Commercial areas", "Parking lots"},
			CrimeTypes:          []string{"Robbery", "Theft"},
			PhysicalDescription: "Medium build, helmet always used",
			Active:              true,
		},
		{
			ID:                  2,
			Name:                "Unknown Suspect B",
			ModusOperandi:       "Online fraud, targets elderly people",
			PreferredLocations:  []string{"Online", "Residential areas"},
			CrimeTypes:          []string{"Fraud", "Cybercrime"},
			PhysicalDescription: "Unknown - operates online",
			Active:              true,
		},
		{
			ID:                  3,
			Name:                "Unknown Suspect C",
			ModusOperandi:       "Violent assaults during night hours",
			PreferredLocations:  []string{"Dark alleys", "Parks after dark"},
			CrimeTypes:          []string{"Assault", "Robbery"},
			PhysicalDescription: "Tall, athletic build, wears dark clothing",
			Active:              true,
		},
	}
}
