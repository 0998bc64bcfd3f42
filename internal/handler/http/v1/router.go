package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authorized := api.Group("")
	authorized.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		// Criminal pattern matching and profile registry
		criminal := authorized.Group("/criminal")
		{
			criminal.POST("/match", h.matchCriminalPattern)
			criminal.GET("/profiles", h.listProfiles)
			criminal.POST("/profiles", h.registerProfile)
			criminal.GET("/profiles/search", h.searchProfiles)
		}

		// Case triage and registry
		cases := authorized.Group("/cases")
		{
			cases.GET("", h.listCases)
			cases.GET("/pending", h.pendingCases)
			cases.GET("/updates", h.caseUpdates)
			cases.GET("/:caseNumber", h.getCase)
			cases.PUT("/:caseNumber/status", h.updateCaseStatus)
		}

		authorized.GET("/dashboard/overview", h.dashboardOverview)
	}

	// Health-check route stays public
	api.GET("/system/health", h.healthCheck)
}
