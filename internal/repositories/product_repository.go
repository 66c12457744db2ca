package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sellerscope_backend/internal/models"
)

// ProductRepository defines the product catalog operations. The catalog feeds
// the zero-sales anomaly check; stock levels feed the inventory checks.
type ProductRepository interface {
	GetAllProducts() ([]models.Product, error)
	CreateProducts(executor SQLExecutor, products []models.Product) error
	DeleteAllProducts(executor SQLExecutor) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetAllProducts() ([]models.Product, error) {
	query := `SELECT id, name, category, base_price, cost, initial_stock, created_at
	          FROM products
	          ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.BasePrice, &p.Cost, &p.InitialStock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning product row: %v", ErrDatabaseError, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *productRepository) CreateProducts(executor SQLExecutor, products []models.Product) error {
	query := `INSERT INTO products (id, name, category, base_price, cost, initial_stock, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i := range products {
		p := &products[i]
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
		_, err := executor.Exec(query, p.ID, p.Name, p.Category, p.BasePrice, p.Cost, p.InitialStock, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: inserting product %q: %v", ErrDatabaseError, p.Name, err)
		}
	}
	return nil
}

func (r *productRepository) DeleteAllProducts(executor SQLExecutor) error {
	if _, err := executor.Exec(`DELETE FROM products`); err != nil {
		return fmt.Errorf("%w: deleting products: %v", ErrDatabaseError, err)
	}
	return nil
}
