package handlers

import (
	"net/http"

	"sellerscope_backend/internal/services"
	"sellerscope_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SeedHandler holds the seed service.
type SeedHandler struct {
	seedService services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(ss services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: ss}
}

// Reseed handles POST /seed-data, replacing the demo data set.
func (h *SeedHandler) Reseed(c *gin.Context) {
	result, err := h.seedService.Reseed(c.Request.Context())
	if err != nil {
		utils.LogError(err, "Reseed: Error from seedService.Reseed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to regenerate demo data.", "Internal error"))
		return
	}

	utils.LogInfo("Demo data regenerated", map[string]interface{}{
		"products":  result.Products,
		"customers": result.Customers,
		"orders":    result.Orders,
	})
	c.JSON(http.StatusOK, result)
}
