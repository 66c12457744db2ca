package analytics

import (
	"errors"
	"testing"
	"time"

	"sellerscope_backend/internal/models"
)

func TestParseTimeRange(t *testing.T) {
	valid := map[string]int{
		"1d":  1,
		"7d":  7,
		"30d": 30,
		"90d": 90,
	}
	for token, want := range valid {
		days, err := ParseTimeRange(token)
		if err != nil {
			t.Errorf("ParseTimeRange(%q) returned error: %v", token, err)
		}
		if days != want {
			t.Errorf("ParseTimeRange(%q) = %d, want %d", token, days, want)
		}
	}

	invalid := []string{"", "30", "d", "abcd", "-5d", "0d", "3.5d", "30D", " 30d"}
	for _, token := range invalid {
		if _, err := ParseTimeRange(token); !errors.Is(err, ErrInvalidTimeRange) {
			t.Errorf("ParseTimeRange(%q) = %v, want ErrInvalidTimeRange", token, err)
		}
	}
}

func TestWindowsAreAdjacentAndEqualLength(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	days := 30

	current := CurrentWindow(now, days)
	previous := PreviousWindow(now, days)

	if !current.End.Equal(now) {
		t.Errorf("current window end = %v, want %v", current.End, now)
	}
	if !current.Start.Equal(now.AddDate(0, 0, -days)) {
		t.Errorf("current window start = %v, want %v", current.Start, now.AddDate(0, 0, -days))
	}
	if !previous.End.Equal(now.AddDate(0, 0, -(days + 1))) {
		t.Errorf("previous window end = %v, want %v", previous.End, now.AddDate(0, 0, -(days+1)))
	}

	currentLen := current.End.Sub(current.Start)
	previousLen := previous.End.Sub(previous.Start)
	if currentLen != previousLen {
		t.Errorf("window lengths differ: current %v, previous %v", currentLen, previousLen)
	}
	if !previous.End.Before(current.Start) {
		t.Errorf("windows overlap: previous end %v, current start %v", previous.End, current.Start)
	}
}

func TestFilterOrdersInclusiveEndpoints(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: end}

	inside := []time.Time{start, end, start.Add(time.Hour), end.Add(-time.Minute)}
	outside := []time.Time{start.Add(-time.Nanosecond), end.Add(time.Nanosecond), start.AddDate(0, 0, -5)}

	for _, ts := range inside {
		filtered := FilterOrders([]models.Order{revenueOrder(ts, "c1", 10)}, w)
		if len(filtered) != 1 {
			t.Errorf("order at %v should be inside window [%v, %v]", ts, start, end)
		}
	}
	for _, ts := range outside {
		filtered := FilterOrders([]models.Order{revenueOrder(ts, "c1", 10)}, w)
		if len(filtered) != 0 {
			t.Errorf("order at %v should be outside window [%v, %v]", ts, start, end)
		}
	}
}
