package v1

import "github.com/nvkalyan/case_intelligence_system/internal/models"

// DTOToProfileModel converts a registration DTO into the domain model
func DTOToProfileModel(dto RegisterProfileRequest) models.OffenderProfile {
	return models.OffenderProfile{
		Name:                dto.Name,
		ModusOperandi:       dto.ModusOperandi,
		PreferredLocations:  dto.PreferredLocations,
		CrimeTypes:          dto.CrimeTypes,
		PhysicalDescription: dto.PhysicalDescription,
		Active:              dto.Active,
	}
}

// ModelToProfileResponse converts a domain profile into a response DTO
func ModelToProfileResponse(model models.OffenderProfile) ProfileResponse {
	return ProfileResponse{
		ID:                  model.ID,
		Name:                model.Name,
		ModusOperandi:       model.ModusOperandi,
		PreferredLocations:  model.PreferredLocations,
		CrimeTypes:          model.CrimeTypes,
		PhysicalDescription: model.PhysicalDescription,
		Active:              model.Active,
	}
}

// ModelsToProfileResponses converts a slice of profiles into response DTOs
func ModelsToProfileResponses(profiles []models.OffenderProfile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ModelToProfileResponse(profile)
	}
	return responses
}

// ModelToMatchResultResponse converts a match result into a response DTO
func ModelToMatchResultResponse(model models.MatchResult) MatchResultResponse {
	return MatchResultResponse{
		ID:                  model.ID,
		Name:                model.Name,
		ModusOperandi:       model.ModusOperandi,
		PreferredLocations:  model.PreferredLocations,
		CrimeTypes:          model.CrimeTypes,
		PhysicalDescription: model.PhysicalDescription,
		Active:              model.Active,
		MatchConfidence:     model.MatchConfidence,
		MatchedElements: MatchedElementsResponse{
			ModusOperandi:  model.MatchedElements.ModusOperandi,
			CrimeTypeMatch: model.MatchedElements.CrimeTypeMatch,
			LocationMatch:  model.MatchedElements.LocationMatch,
		},
		Error: model.Error,
	}
}

// ModelsToMatchResultResponses converts a slice of match results into response DTOs
func ModelsToMatchResultResponses(results []models.MatchResult) []MatchResultResponse {
	responses := make([]MatchResultResponse, len(results))
	for i, result := range results {
		responses[i] = ModelToMatchResultResponse(result)
	}
	return responses
}

// ModelToCaseResponse converts a case record into a response DTO
func ModelToCaseResponse(model models.CaseRecord) CaseResponse {
	return CaseResponse{
		ID:                   model.ID,
		CaseNumber:           model.CaseNumber,
		IncidentType:         model.IncidentType,
		IncidentDate:         model.IncidentDate,
		IncidentLocation:     model.IncidentLocation,
		IncidentDescription:  model.IncidentDescription,
		Status:               model.Status,
		InvestigationNotes:   model.InvestigationNotes,
		InvestigatingOfficer: model.InvestigatingOfficer,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

// ModelsToCaseResponses converts a slice of case records into response DTOs
func ModelsToCaseResponses(records []models.CaseRecord) []CaseResponse {
	responses := make([]CaseResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToCaseResponse(record)
	}
	return responses
}

// ModelToPendingCaseResponse converts a triaged pending case into a response DTO
func ModelToPendingCaseResponse(model models.PendingCase) PendingCaseResponse {
	return PendingCaseResponse{
		CaseResponse: ModelToCaseResponse(model.CaseRecord),
		Analysis: TriageResultResponse{
			NeedsAttention: model.Analysis.NeedsAttention,
			DaysPending:    model.Analysis.DaysPending,
		},
		DaysPending: model.DaysPending,
	}
}

// ModelsToPendingCaseResponses converts a slice of pending cases into response DTOs
func ModelsToPendingCaseResponses(cases []models.PendingCase) []PendingCaseResponse {
	responses := make([]PendingCaseResponse, len(cases))
	for i, pendingCase := range cases {
		responses[i] = ModelToPendingCaseResponse(pendingCase)
	}
	return responses
}

// ModelsToCaseUpdateResponses converts a slice of case updates into response DTOs
func ModelsToCaseUpdateResponses(updates []models.CaseUpdate) []CaseUpdateResponse {
	responses := make([]CaseUpdateResponse, len(updates))
	for i, update := range updates {
		responses[i] = CaseUpdateResponse{
			CaseNumber:   update.CaseNumber,
			IncidentType: update.IncidentType,
			LastUpdated:  update.LastUpdated,
			UpdateType:   update.UpdateType,
			Officer:      update.Officer,
		}
	}
	return responses
}
