package services

import (
	"context"
	"fmt"

	"sellerscope_backend/internal/analytics"
	"sellerscope_backend/internal/cache"
	"sellerscope_backend/internal/models"
	"sellerscope_backend/internal/repositories"
)

// InsightsService produces the full analytics payload for a time range.
type InsightsService interface {
	GetInsights(ctx context.Context, timeRange string) (*models.InsightsPayload, error)
}

type insightsService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cache       *cache.InsightsCache // nil disables caching
	cfg         analytics.Config
}

// NewInsightsService creates a new instance of InsightsService.
func NewInsightsService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	insightsCache *cache.InsightsCache,
	cfg analytics.Config,
) InsightsService {
	return &insightsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       insightsCache,
		cfg:         cfg,
	}
}

func (s *insightsService) GetInsights(ctx context.Context, timeRange string) (*models.InsightsPayload, error) {
	// Validate the token before touching storage or cache so malformed
	// requests fail fast with ErrInvalidTimeRange.
	if _, err := analytics.ParseTimeRange(timeRange); err != nil {
		return nil, err
	}

	if cached := s.cache.Get(ctx, timeRange); cached != nil {
		return cached, nil
	}

	orders, err := s.orderRepo.GetAllOrders()
	if err != nil {
		return nil, fmt.Errorf("fetching order history: %w", err)
	}

	products, err := s.productRepo.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("fetching product catalog: %w", err)
	}

	catalog := make([]string, 0, len(products))
	stockLevels := make(map[string]int, len(products))
	for _, p := range products {
		catalog = append(catalog, p.Name)
		stockLevels[p.Name] = p.InitialStock
	}

	payload, err := analytics.BuildInsightsPayload(analytics.InsightsRequest{
		Orders:         orders,
		TimeRange:      timeRange,
		ProductCatalog: catalog,
		StockLevels:    stockLevels,
	}, s.cfg)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, timeRange, payload)
	return payload, nil
}
