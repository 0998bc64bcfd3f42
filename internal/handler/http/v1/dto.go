package v1

// MatchRequest DTO for matching an incident against known profiles
// @Description DTO for matching an incident description against known offender profiles
type MatchRequest struct {
	CaseDescription string            `json:"case_description" validate:"required,min=2"`
	SuspectDetails  map[string]string `json:"suspect_details,omitempty"`
}

// MatchedElementsResponse DTO for the per-signal match breakdown
// @Description DTO for the per-signal match breakdown
type MatchedElementsResponse struct {
	ModusOperandi  float64 `json:"modus_operandi"`
	CrimeTypeMatch bool    `json:"crime_type_match"`
	LocationMatch  bool    `json:"location_match"`
}

// MatchResultResponse DTO for one profile match
// @Description DTO for one profile match
type MatchResultResponse struct {
	ID                  int64                   `json:"id,omitempty"`
	Name                string                  `json:"name,omitempty"`
	ModusOperandi       string                  `json:"modus_operandi,omitempty"`
	PreferredLocations  []string                `json:"preferred_locations,omitempty"`
	CrimeTypes          []string                `json:"crime_types,omitempty"`
	PhysicalDescription string                  `json:"physical_description,omitempty"`
	Active              bool                    `json:"active,omitempty"`
	MatchConfidence     float64                 `json:"match_confidence"`
	MatchedElements     MatchedElementsResponse `json:"matched_elements"`
	Error               string                  `json:"error,omitempty"`
}

// MatchResponse DTO for the match endpoint response
// @Description DTO for the match endpoint response
type MatchResponse struct {
	Success    bool                  `json:"success"`
	Matches    []MatchResultResponse `json:"matches"`
	MatchCount int                   `json:"match_count"`
}

// RegisterProfileRequest DTO for registering a new offender profile
// @Description DTO for registering a new offender profile
type RegisterProfileRequest struct {
	Name                string   `json:"name" validate:"required,min=2,max=255"`
	ModusOperandi       string   `json:"modus_operandi" validate:"required"`
	PreferredLocations  []string `json:"preferred_locations,omitempty"`
	CrimeTypes          []string `json:"crime_types,omitempty"`
	PhysicalDescription string   `json:"physical_description,omitempty"`
	Active              bool     `json:"active"`
}

// ProfileResponse DTO for an offender profile
// @Description DTO for an offender profile
type ProfileResponse struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	ModusOperandi       string   `json:"modus_operandi"`
	PreferredLocations  []string `json:"preferred_locations"`
	CrimeTypes          []string `json:"crime_types"`
	PhysicalDescription string   `json:"physical_description"`
	Active              bool     `json:"active"`
}

// ProfilesResponse DTO for profile collection responses
// @Description DTO for profile collection responses
type ProfilesResponse struct {
	Success  bool              `json:"success"`
	Profiles []ProfileResponse `json:"profiles"`
}

// UpdateCaseStatusRequest DTO for updating a case status
// @Description DTO for updating a case status
type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,min=2,max=64"`
	Notes  string `json:"notes,omitempty"`
}

// CaseResponse DTO for a case record
// @Description DTO for a case record
type CaseResponse struct {
	ID                   int64  `json:"id"`
	CaseNumber           string `json:"case_number"`
	IncidentType         string `json:"incident_type"`
	IncidentDate         string `json:"incident_date"`
	IncidentLocation     string `json:"incident_location"`
	IncidentDescription  string `json:"incident_description"`
	Status               string `json:"status"`
	InvestigationNotes   string `json:"investigation_notes"`
	InvestigatingOfficer string `json:"investigating_officer"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// TriageResultResponse DTO for the triage decision of one case
// @Description DTO for the triage decision of one case
type TriageResultResponse struct {
	NeedsAttention bool `json:"needs_attention"`
	DaysPending    *int `json:"days_pending"`
}

// PendingCaseResponse DTO for one entry of the pending view
// @Description DTO for one entry of the pending view
type PendingCaseResponse struct {
	CaseResponse
	Analysis    TriageResultResponse `json:"analysis"`
	DaysPending *int                 `json:"days_pending"`
}

// PendingCasesResponse DTO for the pending cases endpoint
// @Description DTO for the pending cases endpoint
type PendingCasesResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Cases   []PendingCaseResponse `json:"cases"`
}

// CaseUpdateResponse DTO for one entry of the recent updates view
// @Description DTO for one entry of the recent updates view
type CaseUpdateResponse struct {
	CaseNumber   string `json:"case_number"`
	IncidentType string `json:"incident_type"`
	LastUpdated  string `json:"last_updated"`
	UpdateType   string `json:"update_type"`
	Officer      string `json:"officer"`
}

// CaseUpdatesResponse DTO for the recent updates endpoint
// @Description DTO for the recent updates endpoint
type CaseUpdatesResponse struct {
	Success       bool                 `json:"success"`
	Updates       []CaseUpdateResponse `json:"updates"`
	LastWeekCount int                  `json:"last_week_count"`
}

// DashboardOverviewResponse DTO for the dashboard overview endpoint
// @Description DTO for the dashboard overview endpoint
type DashboardOverviewResponse struct {
	TodayCases     int            `json:"today_cases"`
	PendingCases   int            `json:"pending_cases"`
	RecentActivity []CaseResponse `json:"recent_activity"`
}
