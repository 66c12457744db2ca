package router

import (
	"database/sql"
	"os"

	"sellerscope_backend/internal/ai"
	"sellerscope_backend/internal/analytics"
	"sellerscope_backend/internal/cache"
	"sellerscope_backend/internal/handlers"
	"sellerscope_backend/internal/repositories"
	"sellerscope_backend/internal/services"
	"sellerscope_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers and registers all routes.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	orderRepo := repositories.NewOrderRepository(db)
	productRepo := repositories.NewProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)

	// Optional insights cache; nil when REDIS_ADDR is unset.
	insightsCache := cache.New(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), cache.DefaultTTL)

	// Analytics tunables, overridable per deployment.
	cfg := analytics.DefaultConfig()
	cfg.MaxTopProducts = utils.GetenvInt("MAX_TOP_PRODUCTS", cfg.MaxTopProducts)
	cfg.MaxSampleOrders = utils.GetenvInt("MAX_SAMPLE_ORDERS", cfg.MaxSampleOrders)
	cfg.RevenueDipThreshold = utils.GetenvFloat("REVENUE_DIP_THRESHOLD", cfg.RevenueDipThreshold)
	cfg.LowStockThreshold = utils.GetenvInt("LOW_STOCK_THRESHOLD", cfg.LowStockThreshold)

	// Optional LLM client; nil keeps the ask feature in "not configured" mode.
	var aiClient *ai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		aiClient = ai.NewClient(key)
	}

	// Services
	insightsService := services.NewInsightsService(orderRepo, productRepo, insightsCache, cfg)
	askService := services.NewAskService(insightsService, aiClient)
	seedService := services.NewSeedService(orderRepo, productRepo, customerRepo, insightsCache, db)

	authService, err := services.NewAuthService(
		utils.Getenv("DEMO_USER_EMAIL", "demo@sellerscope.app"),
		utils.Getenv("DEMO_USER_NAME", "Demo Seller"),
		utils.Getenv("DEMO_USER_PASSWORD", "demo-password"),
	)
	if err != nil {
		utils.LogError(err, "Setup: failed to initialize auth service")
		panic(err)
	}

	// Handlers
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	askHandler := handlers.NewAskHandler(askService)
	seedHandler := handlers.NewSeedHandler(seedService)
	authHandler := handlers.NewAuthHandler(authService)
	statusHandler := handlers.NewStatusHandler(customerRepo)

	apiV1 := engine.Group("/api/v1")
	SetupAuthRoutes(apiV1, authHandler)
	SetupInsightsRoutes(apiV1, insightsHandler, askHandler)
	SetupAdminRoutes(apiV1, seedHandler)
	SetupStatusRoutes(apiV1, statusHandler)
}
