package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sellerscope_backend/internal/models"
)

// OrderRepository defines the order-related database operations. The
// analytics pipeline only ever needs the flat, timestamp-ordered history;
// windowing happens in memory.
type OrderRepository interface {
	GetAllOrders() ([]models.Order, error)
	CreateOrders(executor SQLExecutor, orders []models.Order) error
	DeleteAllOrders(executor SQLExecutor) error
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetAllOrders() ([]models.Order, error) {
	query := `SELECT id, order_date, customer_id, product_id, product_name, category,
	                 quantity, unit_price, total_price, cost, created_at
	          FROM orders
	          ORDER BY order_date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.OrderDate, &o.CustomerID, &o.ProductID, &o.ProductName, &o.Category,
			&o.Quantity, &o.UnitPrice, &o.TotalPrice, &o.Cost, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning order row: %v", ErrDatabaseError, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) CreateOrders(executor SQLExecutor, orders []models.Order) error {
	query := `INSERT INTO orders
	            (id, order_date, customer_id, product_id, product_name, category,
	             quantity, unit_price, total_price, cost, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for i := range orders {
		o := &orders[i]
		if o.CreatedAt.IsZero() {
			o.CreatedAt = time.Now()
		}
		_, err := executor.Exec(query,
			o.ID, o.OrderDate, o.CustomerID, o.ProductID, o.ProductName, o.Category,
			o.Quantity, o.UnitPrice, o.TotalPrice, o.Cost, o.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: inserting order %s: %v", ErrDatabaseError, o.ID, err)
		}
	}
	return nil
}

func (r *orderRepository) DeleteAllOrders(executor SQLExecutor) error {
	if _, err := executor.Exec(`DELETE FROM orders`); err != nil {
		return fmt.Errorf("%w: deleting orders: %v", ErrDatabaseError, err)
	}
	return nil
}
