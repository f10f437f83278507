package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// AnalyticsHandler serves the dashboard rollups and suggestion feed.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Dashboard returns the global task rollups.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context(), subject)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Suggestions returns heuristic hints for the authenticated user.
func (h *AnalyticsHandler) Suggestions(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	suggestions, err := h.analyticsService.GetSuggestions(c.Request.Context(), subject)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
	})
}
