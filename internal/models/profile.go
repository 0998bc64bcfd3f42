package models

// OffenderProfile is a behavioral record of a suspected repeat pattern,
// not a confirmed individual identity.
type OffenderProfile struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	ModusOperandi       string   `json:"modus_operandi"`
	PreferredLocations  []string `json:"preferred_locations"`
	CrimeTypes          []string `json:"crime_types"`
	PhysicalDescription string   `json:"physical_description"`
	Active              bool     `json:"active"`
}

// MatchedElements holds the per-signal breakdown of a match.
type MatchedElements struct {
	ModusOperandi  float64 `json:"modus_operandi"`
	CrimeTypeMatch bool    `json:"crime_type_match"`
	LocationMatch  bool    `json:"location_match"`
}

// MatchResult is a profile copy with the confidence computed for one query.
// It only exists for the duration of a single response. A non-empty Error
// means the entry is a failure marker, not match data; callers must check it
// before reading the other fields.
type MatchResult struct {
	OffenderProfile
	MatchConfidence float64         `json:"match_confidence"`
	MatchedElements MatchedElements `json:"matched_elements"`
	Error           string          `json:"error,omitempty"`
}
