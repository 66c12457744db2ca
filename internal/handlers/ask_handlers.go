package handlers

import (
	"errors"
	"net/http"

	"sellerscope_backend/internal/ai"
	"sellerscope_backend/internal/analytics"
	"sellerscope_backend/internal/models"
	"sellerscope_backend/internal/services"
	"sellerscope_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AskHandler holds the ask service.
type AskHandler struct {
	askService services.AskService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(as services.AskService) *AskHandler {
	return &AskHandler{askService: as}
}

// Ask handles POST /ask with a natural-language question about the data.
func (h *AskHandler) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: question is required.", err.Error()))
		return
	}

	answer, err := h.askService.Ask(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAINotConfigured):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeNotConfigured, "AI provider not configured.", "Set OPENAI_API_KEY to enable the ask feature."))
		case errors.Is(err, analytics.ErrInvalidTimeRange):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid time_range parameter.", err.Error()))
		case errors.Is(err, ai.ErrInvalidResponse):
			utils.LogError(err, "Ask: model returned an invalid response")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamFailed, "The AI response failed validation.", err.Error()))
		default:
			utils.LogError(err, "Ask: Error from askService.Ask")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamFailed, "Failed to generate an answer.", "Upstream error"))
		}
		return
	}

	c.JSON(http.StatusOK, answer)
}
