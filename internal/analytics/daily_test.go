package analytics

import (
	"testing"
	"time"

	"sellerscope_backend/internal/models"
)

func TestDailySeriesInclusiveDayCount(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}

	series := DailySeries(nil, w)

	if len(series) != 7 {
		t.Fatalf("len = %d, want 7 for an inclusive 7-day window", len(series))
	}
	if series[0].Date != "2024-01-01" || series[6].Date != "2024-01-07" {
		t.Errorf("series spans %s..%s, want 2024-01-01..2024-01-07", series[0].Date, series[6].Date)
	}
}

func TestDailySeriesZeroFillAndAggregation(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC),
	}
	orders := []models.Order{
		revenueOrder(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), "c1", 4.50),
		revenueOrder(time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), "c2", 4.50),
		revenueOrder(time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), "c3", 6.00),
	}

	series := DailySeries(orders, w)

	if len(series) != 3 {
		t.Fatalf("len = %d, want 3", len(series))
	}
	if series[0].Revenue != 9.00 || series[0].Orders != 2 {
		t.Errorf("day 1 = %v/%d, want 9.00/2", series[0].Revenue, series[0].Orders)
	}
	if series[1].Revenue != 0 || series[1].Orders != 0 {
		t.Errorf("day 2 = %v/%d, want zero-filled point", series[1].Revenue, series[1].Orders)
	}
	if series[2].Revenue != 6.00 || series[2].Orders != 1 {
		t.Errorf("day 3 = %v/%d, want 6.00/1", series[2].Revenue, series[2].Orders)
	}
}

func TestDailySeriesAscendingAndLabeled(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 2, 27, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	series := DailySeries(nil, w)

	for i := 1; i < len(series); i++ {
		if series[i].Date <= series[i-1].Date {
			t.Errorf("series not ascending at index %d: %s after %s", i, series[i].Date, series[i-1].Date)
		}
	}
	// Leap year: Feb 29 must be present.
	found := false
	for _, p := range series {
		if p.Date == "2024-02-29" {
			found = true
			if p.Label != "Feb 29" {
				t.Errorf("label = %q, want %q", p.Label, "Feb 29")
			}
		}
	}
	if !found {
		t.Error("series over Feb-Mar 2024 should include 2024-02-29")
	}
}
