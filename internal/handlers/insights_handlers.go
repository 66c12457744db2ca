package handlers

import (
	"errors"
	"net/http"

	"sellerscope_backend/internal/analytics"
	"sellerscope_backend/internal/services"
	"sellerscope_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DefaultInsightsRange is used when the query names no time range.
const DefaultInsightsRange = "30d"

// InsightsHandler holds the insights service.
type InsightsHandler struct {
	insightsService services.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(is services.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: is}
}

// GetInsights handles GET /insights?time_range=30d.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	timeRange := c.DefaultQuery("time_range", DefaultInsightsRange)

	payload, err := h.insightsService.GetInsights(c.Request.Context(), timeRange)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidTimeRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid time_range parameter.", err.Error()))
			return
		}
		utils.LogError(err, "GetInsights: Error from insightsService.GetInsights")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute insights.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, payload)
}
