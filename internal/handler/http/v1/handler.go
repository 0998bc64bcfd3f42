package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nvkalyan/case_intelligence_system/internal/config"
	"github.com/nvkalyan/case_intelligence_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	matcherService service.MatcherService
	triageService  service.TriageService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(matcherService service.MatcherService, triageService service.TriageService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		matcherService: matcherService,
		triageService:  triageService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Match an incident against offender profiles
// @Description Score an incident description against every registered offender profile. Requires API key.
// @Tags Criminal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body MatchRequest true "Incident match request"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /criminal/match [post]
func (h *Handler) matchCriminalPattern(c *gin.Context) {
	var input MatchRequest
	log := h.logger.WithField("method", "matchCriminalPattern")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches := h.matcherService.FindMatches(c.Request.Context(), input.CaseDescription, input.SuspectDetails)

	c.JSON(http.StatusOK, MatchResponse{
		Success:    true,
		Matches:    ModelsToMatchResultResponses(matches),
		MatchCount: len(matches),
	})
}

// @Summary List offender profiles
// @Description Get every registered offender profile in registration order. Requires API key.
// @Tags Criminal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ProfilesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /criminal/profiles [get]
func (h *Handler) listProfiles(c *gin.Context) {
	profiles := h.matcherService.ListProfiles(c.Request.Context())

	c.JSON(http.StatusOK, ProfilesResponse{
		Success:  true,
		Profiles: ModelsToProfileResponses(profiles),
	})
}

// @Summary Register a new offender profile
// @Description Register a new offender profile in the matching registry. Requires API key.
// @Tags Criminal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body RegisterProfileRequest true "Profile registration request"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /criminal/profiles [post]
func (h *Handler) registerProfile(c *gin.Context) {
	var input RegisterProfileRequest
	log := h.logger.WithField("method", "registerProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.matcherService.RegisterProfile(c.Request.Context(), DTOToProfileModel(input))
	c.JSON(http.StatusCreated, ModelToProfileResponse(created))
}

// @Summary Search offender profiles
// @Description Search offender profiles by name, modus operandi, crime types, locations or description. Requires API key.
// @Tags Criminal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Search term"
// @Success 200 {object} ProfilesResponse
// @Failure 400 {object} map[string]string "Missing search term"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /criminal/profiles/search [get]
func (h *Handler) searchProfiles(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
		return
	}

	profiles := h.matcherService.SearchProfiles(c.Request.Context(), term)

	c.JSON(http.StatusOK, ProfilesResponse{
		Success:  true,
		Profiles: ModelsToProfileResponses(profiles),
	})
}

// @Summary Get pending cases
// @Description Get triaged cases whose incident date falls inside the trailing 30 days. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PendingCasesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/pending [get]
func (h *Handler) pendingCases(c *gin.Context) {
	log := h.logger.WithField("method", "pendingCases")

	pending, err := h.triageService.PendingCases(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to collect pending cases from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PendingCasesResponse{
		Success: true,
		Count:   len(pending),
		Cases:   ModelsToPendingCaseResponses(pending),
	})
}

// @Summary Get recent case updates
// @Description Get cases updated inside the trailing 7 days. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CaseUpdatesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/updates [get]
func (h *Handler) caseUpdates(c *gin.Context) {
	log := h.logger.WithField("method", "caseUpdates")

	updates, err := h.triageService.RecentUpdates(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to collect case updates from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CaseUpdatesResponse{
		Success:       true,
		Updates:       ModelsToCaseUpdateResponses(updates),
		LastWeekCount: len(updates),
	})
}

// @Summary Get a list of cases
// @Description Get a paginated list of case records, newest first. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} CaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases [get]
func (h *Handler) listCases(c *gin.Context) {
	log := h.logger.WithField("method", "listCases")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	records, err := h.triageService.ListCases(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCaseResponses(records))
}

// @Summary Get case by number
// @Description Get a single case record by its case number. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseNumber path string true "Case number"
// @Success 200 {object} CaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Router /cases/{caseNumber} [get]
func (h *Handler) getCase(c *gin.Context) {
	caseNumber := c.Param("caseNumber")
	log := h.logger.WithField("method", "getCase").WithField("case_number", caseNumber)

	record, err := h.triageService.GetCase(c.Request.Context(), caseNumber)
	if err != nil {
		log.WithError(err).Warn("Failed to get case from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(*record))
}

// @Summary Update case status
// @Description Update the status and investigation notes of a case. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseNumber path string true "Case number"
// @Param status body UpdateCaseStatusRequest true "Case status update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{caseNumber}/status [put]
func (h *Handler) updateCaseStatus(c *gin.Context) {
	caseNumber := c.Param("caseNumber")
	log := h.logger.WithField("method", "updateCaseStatus").WithField("case_number", caseNumber)

	var input UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.triageService.UpdateCaseStatus(c.Request.Context(), caseNumber, input.Status, input.Notes); err != nil {
		log.WithError(err).Error("Failed to update case status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update case status"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get dashboard overview
// @Description Get the headline dashboard numbers and recent case activity. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DashboardOverviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/overview [get]
func (h *Handler) dashboardOverview(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardOverview")

	overview, err := h.triageService.DashboardOverview(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard overview in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DashboardOverviewResponse{
		TodayCases:     overview.TodayCases,
		PendingCases:   overview.PendingCases,
		RecentActivity: ModelsToCaseResponses(overview.RecentActivity),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
