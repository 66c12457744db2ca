package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sellerscope_backend/internal/models"
)

// CustomerRepository defines the customer operations needed by the seeder.
type CustomerRepository interface {
	CreateCustomers(executor SQLExecutor, customers []models.Customer) error
	DeleteAllCustomers(executor SQLExecutor) error
	CountCustomers() (int, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomers(executor SQLExecutor, customers []models.Customer) error {
	query := `INSERT INTO customers (id, first_name, last_name, email, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	for i := range customers {
		c := &customers[i]
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		if _, err := executor.Exec(query, c.ID, c.FirstName, c.LastName, c.Email, c.CreatedAt); err != nil {
			return fmt.Errorf("%w: inserting customer %s: %v", ErrDatabaseError, c.ID, err)
		}
	}
	return nil
}

func (r *customerRepository) DeleteAllCustomers(executor SQLExecutor) error {
	if _, err := executor.Exec(`DELETE FROM customers`); err != nil {
		return fmt.Errorf("%w: deleting customers: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *customerRepository) CountCustomers() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting customers: %v", ErrDatabaseError, err)
	}
	return count, nil
}
