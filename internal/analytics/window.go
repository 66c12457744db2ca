package analytics

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"sellerscope_backend/internal/models"
)

// ErrInvalidTimeRange is returned for time-range tokens that do not match
// "<positive integer>d", e.g. "30d".
var ErrInvalidTimeRange = errors.New("invalid time range")

var timeRangePattern = regexp.MustCompile(`^([0-9]+)d$`)

// ParseTimeRange parses a token like "7d", "30d" or "90d" into a day count.
func ParseTimeRange(token string) (int, error) {
	m := timeRangePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected e.g. \"30d\")", ErrInvalidTimeRange, token)
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 {
		return 0, fmt.Errorf("%w: %q (day count must be a positive integer)", ErrInvalidTimeRange, token)
	}
	return days, nil
}

// Window is a closed time interval used to filter orders for a report period.
type Window struct {
	Start time.Time
	End   time.Time
}

// CurrentWindow returns the window [now - days, now].
func CurrentWindow(now time.Time, days int) Window {
	return Window{Start: now.AddDate(0, 0, -days), End: now}
}

// PreviousWindow returns the equal-length window immediately preceding the
// current one: it ends the day before the current window starts.
func PreviousWindow(now time.Time, days int) Window {
	end := now.AddDate(0, 0, -(days + 1))
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// FilterOrders returns the orders whose timestamp falls within the window.
func FilterOrders(orders []models.Order, w Window) []models.Order {
	filtered := []models.Order{}
	for _, o := range orders {
		if w.Contains(o.OrderDate) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
