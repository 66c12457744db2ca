package router

import (
	"sellerscope_backend/internal/handlers"
	"sellerscope_backend/internal/middleware"
	"sellerscope_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the demo session routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.Me)
		}
	}
}

// SetupInsightsRoutes sets up the analytics and Q&A routes.
func SetupInsightsRoutes(apiGroup *gin.RouterGroup, insightsHandler *handlers.InsightsHandler, askHandler *handlers.AskHandler) {
	insightsRoutes := apiGroup.Group("")
	insightsRoutes.Use(middleware.AuthMiddleware())
	{
		insightsRoutes.GET("/insights", insightsHandler.GetInsights)
		insightsRoutes.POST("/ask", askHandler.Ask)
	}
}

// SetupAdminRoutes sets up the owner-only maintenance routes.
func SetupAdminRoutes(apiGroup *gin.RouterGroup, seedHandler *handlers.SeedHandler) {
	adminRoutes := apiGroup.Group("")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RoleAuthMiddleware(services.DemoRole))
	{
		adminRoutes.POST("/seed-data", seedHandler.Reseed)
	}
}

// SetupStatusRoutes sets up the public configuration status route.
func SetupStatusRoutes(apiGroup *gin.RouterGroup, statusHandler *handlers.StatusHandler) {
	apiGroup.GET("/config-status", statusHandler.GetConfigStatus)
}
