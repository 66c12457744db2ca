package analytics

import (
	"testing"
	"time"

	"sellerscope_backend/internal/models"
)

func TestComputeKPIsEmptyInput(t *testing.T) {
	got := ComputeKPIs(nil)
	want := models.KPIs{}
	if got != want {
		t.Errorf("ComputeKPIs(nil) = %+v, want all-zero KPIs", got)
	}
}

func TestComputeKPIs(t *testing.T) {
	d := day(2024, time.January, 5)
	orders := []models.Order{
		testOrder(d, "c1", "Latte", "Coffee & Tea", 1, 4.50, 4.50, 1.13),
		testOrder(d, "c1", "Latte", "Coffee & Tea", 1, 4.50, 4.50, 1.13),
		testOrder(d, "c2", "Croissant", "Pastries", 2, 3.00, 6.00, 0.90),
	}

	kpis := ComputeKPIs(orders)

	if kpis.Orders != len(orders) {
		t.Errorf("Orders = %d, want %d", kpis.Orders, len(orders))
	}
	if kpis.Revenue != 15.00 {
		t.Errorf("Revenue = %v, want 15.00", kpis.Revenue)
	}
	if kpis.AOV != 5.00 {
		t.Errorf("AOV = %v, want 5.00", kpis.AOV)
	}
	// c1 placed two orders, c2 one: 1 of 2 customers returning.
	if kpis.ReturningPct != 50.0 {
		t.Errorf("ReturningPct = %v, want 50.0", kpis.ReturningPct)
	}
	if kpis.GrossProfit != 11.84 {
		t.Errorf("GrossProfit = %v, want 11.84", kpis.GrossProfit)
	}
	// 11.84 / 15.00 * 100 = 78.933... -> 78.9
	if kpis.GrossMarginPct != 78.9 {
		t.Errorf("GrossMarginPct = %v, want 78.9", kpis.GrossMarginPct)
	}
}

func TestComputeKPIsRevenueRounding(t *testing.T) {
	d := day(2024, time.February, 1)
	orders := []models.Order{
		revenueOrder(d, "c1", 10.004),
		revenueOrder(d, "c2", 0.003),
	}

	kpis := ComputeKPIs(orders)

	// Rounding happens on the aggregate, not per line: 10.007 -> 10.01.
	if kpis.Revenue != 10.01 {
		t.Errorf("Revenue = %v, want 10.01", kpis.Revenue)
	}
}

func TestComputeKPIsSingleCustomer(t *testing.T) {
	d := day(2024, time.March, 1)
	kpis := ComputeKPIs([]models.Order{revenueOrder(d, "c1", 20)})

	if kpis.ReturningPct != 0 {
		t.Errorf("ReturningPct = %v, want 0 for a single one-order customer", kpis.ReturningPct)
	}
}
