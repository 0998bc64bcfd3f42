package models

// CaseRecord is a row from the case registry. Timestamps stay raw strings
// until they pass through the temporal normalizer; Extra carries pass-through
// fields the engine does not interpret.
type CaseRecord struct {
	ID                   int64             `json:"id"`
	CaseNumber           string            `json:"case_number"`
	IncidentType         string            `json:"incident_type"`
	IncidentDate         string            `json:"incident_date"`
	IncidentLocation     string            `json:"incident_location"`
	IncidentDescription  string            `json:"incident_description"`
	Status               string            `json:"status"`
	InvestigationNotes   string            `json:"investigation_notes"`
	InvestigatingOfficer string            `json:"investigating_officer"`
	CreatedAt            string            `json:"created_at"`
	UpdatedAt            string            `json:"updated_at"`
	Extra                map[string]string `json:"extra,omitempty"`
}

// TriageResult is the attention decision for one case. DaysPending is nil
// when created_at did not normalize.
type TriageResult struct {
	NeedsAttention bool `json:"needs_attention"`
	DaysPending    *int `json:"days_pending"`
}

// PendingCase is a triaged case as served by the pending view.
type PendingCase struct {
	CaseRecord
	Analysis    TriageResult `json:"analysis"`
	DaysPending *int         `json:"days_pending"`
}

// CaseUpdate is one entry of the recent-updates view.
type CaseUpdate struct {
	CaseNumber   string `json:"case_number"`
	IncidentType string `json:"incident_type"`
	LastUpdated  string `json:"last_updated"`
	UpdateType   string `json:"update_type"`
	Officer      string `json:"officer"`
}

// DashboardOverview aggregates the headline numbers for the police dashboard.
type DashboardOverview struct {
	TodayCases     int          `json:"today_cases"`
	PendingCases   int          `json:"pending_cases"`
	RecentActivity []CaseRecord `json:"recent_activity"`
}
