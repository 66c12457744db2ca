package services

import (
	"context"
	"database/sql"
	"fmt"

	"sellerscope_backend/internal/cache"
	"sellerscope_backend/internal/repositories"
	"sellerscope_backend/internal/seed"
)

// SeedResult summarizes a reseed run.
type SeedResult struct {
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Orders    int `json:"orders"`
}

// SeedService regenerates the demo data set.
type SeedService interface {
	Reseed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	customerRepo repositories.CustomerRepository
	cache        *cache.InsightsCache
	db           *sql.DB // for the reseed transaction
	days         int
	customers    int
}

// NewSeedService creates a new instance of SeedService.
func NewSeedService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	customerRepo repositories.CustomerRepository,
	insightsCache *cache.InsightsCache,
	db *sql.DB,
) SeedService {
	return &seedService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		cache:        insightsCache,
		db:           db,
		days:         seed.DefaultDays,
		customers:    seed.DefaultCustomerCount,
	}
}

// Reseed replaces all demo data in one transaction: wipe, regenerate, insert.
func (s *seedService) Reseed(ctx context.Context) (*SeedResult, error) {
	products := seed.GenerateProducts()
	customers := seed.GenerateCustomers(s.customers)
	orders := seed.GenerateOrders(products, customers, s.days)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.orderRepo.DeleteAllOrders(tx); err != nil {
		return nil, err
	}
	if err := s.customerRepo.DeleteAllCustomers(tx); err != nil {
		return nil, err
	}
	if err := s.productRepo.DeleteAllProducts(tx); err != nil {
		return nil, err
	}

	if err := s.productRepo.CreateProducts(tx, products); err != nil {
		return nil, err
	}
	if err := s.customerRepo.CreateCustomers(tx, customers); err != nil {
		return nil, err
	}
	if err := s.orderRepo.CreateOrders(tx, orders); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	// Cached payloads describe the old data set.
	s.cache.Invalidate(ctx)

	return &SeedResult{
		Products:  len(products),
		Customers: len(customers),
		Orders:    len(orders),
	}, nil
}
