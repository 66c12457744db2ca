package analytics

import (
	"time"

	"sellerscope_backend/internal/models"
)

// testOrder builds an order line for analytics tests. Cost defaults to zero;
// tests that exercise profit math set it explicitly.
func testOrder(date time.Time, customerID, product, category string, qty int, unitPrice, totalPrice, cost float64) models.Order {
	return models.Order{
		ID:          product + "-" + date.Format("20060102150405"),
		OrderDate:   date,
		CustomerID:  customerID,
		ProductID:   product,
		ProductName: product,
		Category:    category,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
		Cost:        cost,
	}
}

// revenueOrder is shorthand for a one-unit order carrying only revenue.
func revenueOrder(date time.Time, customerID string, total float64) models.Order {
	return testOrder(date, customerID, "Widget", "General", 1, total, total, 0)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
