package analytics

import (
	"testing"
	"time"

	"sellerscope_backend/internal/models"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 110, 100, 10.0},
		{"decline is not symmetric with growth", 100, 110, -9.1},
		{"previous zero with gain", 50, 0, 100},
		{"both zero", 0, 0, 0},
		{"full decline", 0, 80, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("percentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestComputeTrends(t *testing.T) {
	d := day(2024, time.April, 10)
	current := []models.Order{
		revenueOrder(d, "c1", 60),
		revenueOrder(d, "c2", 50),
	}
	previous := []models.Order{
		revenueOrder(d.AddDate(0, 0, -10), "c1", 100),
	}

	trends := ComputeTrends(current, previous, "vs previous 7d")

	if trends.PeriodLabel != "vs previous 7d" {
		t.Errorf("PeriodLabel = %q, want %q", trends.PeriodLabel, "vs previous 7d")
	}
	// Revenue 110 vs 100.
	if trends.RevenueChangePct != 10.0 {
		t.Errorf("RevenueChangePct = %v, want 10.0", trends.RevenueChangePct)
	}
	// Orders 2 vs 1.
	if trends.OrdersChangePct != 100.0 {
		t.Errorf("OrdersChangePct = %v, want 100.0", trends.OrdersChangePct)
	}
	// AOV 55 vs 100.
	if trends.AOVChangePct != -45.0 {
		t.Errorf("AOVChangePct = %v, want -45.0", trends.AOVChangePct)
	}
}

func TestComputeTrendsEmptyPrevious(t *testing.T) {
	d := day(2024, time.April, 10)
	trends := ComputeTrends([]models.Order{revenueOrder(d, "c1", 42)}, nil, "vs previous 30d")

	if trends.RevenueChangePct != 100 || trends.OrdersChangePct != 100 || trends.AOVChangePct != 100 {
		t.Errorf("trends vs empty previous = %+v, want all change percentages 100", trends)
	}
}

func TestComputeTrendsBothEmpty(t *testing.T) {
	trends := ComputeTrends(nil, nil, "vs previous 30d")

	if trends.RevenueChangePct != 0 || trends.OrdersChangePct != 0 || trends.AOVChangePct != 0 {
		t.Errorf("trends with both periods empty = %+v, want all change percentages 0", trends)
	}
}
