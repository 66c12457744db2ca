package analytics

import (
	"time"

	"sellerscope_backend/internal/models"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "Jan 2"
)

// DailySeries produces one chart point per calendar day from the window start
// to its end, inclusive of both. Orders are bucketed by the UTC date portion
// of their timestamp; days without orders contribute zero-valued points so the
// rendering layer gets a continuous x-axis.
func DailySeries(orders []models.Order, w Window) []models.DailyChartPoint {
	type bucket struct {
		revenue float64
		orders  int
	}
	buckets := map[string]bucket{}
	for _, o := range orders {
		key := o.OrderDate.UTC().Format(isoDateLayout)
		b := buckets[key]
		b.revenue += o.TotalPrice
		b.orders++
		buckets[key] = b
	}

	start := truncateToDay(w.Start)
	end := truncateToDay(w.End)

	series := []models.DailyChartPoint{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(isoDateLayout)
		b := buckets[key]
		series = append(series, models.DailyChartPoint{
			Date:    key,
			Label:   day.Format(displayDateLayout),
			Revenue: round2(b.revenue),
			Orders:  b.orders,
		})
	}
	return series
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
