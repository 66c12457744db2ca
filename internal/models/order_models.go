package models

import "time"

// Order is a single order line as stored in the orders table. The analytics
// pipeline treats orders as read-only snapshots and always uses the stored
// TotalPrice rather than recomputing UnitPrice * Quantity.
type Order struct {
	ID          string    `json:"id"`
	OrderDate   time.Time `json:"order_date"`
	CustomerID  string    `json:"customer_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	Cost        float64   `json:"cost"` // total cost for the line, not unit cost
	CreatedAt   time.Time `json:"created_at"`
}

// Product is a catalog entry. InitialStock doubles as the demo stock level
// consumed by the anomaly checks.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	BasePrice    float64   `json:"base_price"`
	Cost         float64   `json:"cost"`
	InitialStock int       `json:"initial_stock"`
	CreatedAt    time.Time `json:"created_at"`
}

// Customer is a demo customer record generated by the seeder.
type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
