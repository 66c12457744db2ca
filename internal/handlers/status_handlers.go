package handlers

import (
	"net/http"
	"os"

	"sellerscope_backend/internal/repositories"
	"sellerscope_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ConfigStatus reports which external integrations are configured and whether
// demo data has been seeded, so the frontend can guide setup. It never
// exposes the secrets themselves.
type ConfigStatus struct {
	Database bool `json:"database"`
	OpenAI   bool `json:"openai"`
	Redis    bool `json:"redis"`
	Seeded   bool `json:"seeded"`
}

// StatusHandler holds the repositories the status probe reads from.
type StatusHandler struct {
	customerRepo repositories.CustomerRepository
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(cr repositories.CustomerRepository) *StatusHandler {
	return &StatusHandler{customerRepo: cr}
}

// GetConfigStatus handles GET /config-status.
func (h *StatusHandler) GetConfigStatus(c *gin.Context) {
	seeded := false
	if count, err := h.customerRepo.CountCustomers(); err != nil {
		utils.LogError(err, "GetConfigStatus: counting customers")
	} else {
		seeded = count > 0
	}

	c.JSON(http.StatusOK, ConfigStatus{
		Database: os.Getenv("DB_HOST") != "",
		OpenAI:   os.Getenv("OPENAI_API_KEY") != "",
		Redis:    os.Getenv("REDIS_ADDR") != "",
		Seeded:   seeded,
	})
}
