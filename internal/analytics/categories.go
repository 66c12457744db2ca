package analytics

import (
	"sort"

	"sellerscope_backend/internal/models"
)

// CategoryBreakdown aggregates orders by category and computes each category's
// share of total revenue, sorted descending by revenue. When total revenue is
// zero every share is zero rather than a division error.
func CategoryBreakdown(orders []models.Order) []models.CategoryBreakdown {
	type categoryStats struct {
		category string
		revenue  float64
		units    int
	}

	var totalRevenue float64
	statsIndex := map[string]int{}
	stats := []categoryStats{}
	for _, o := range orders {
		totalRevenue += o.TotalPrice
		i, ok := statsIndex[o.Category]
		if !ok {
			i = len(stats)
			statsIndex[o.Category] = i
			stats = append(stats, categoryStats{category: o.Category})
		}
		stats[i].revenue += o.TotalPrice
		stats[i].units += o.Quantity
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(stats))
	for _, s := range stats {
		pct := 0.0
		if totalRevenue > 0 {
			pct = round1(s.revenue / totalRevenue * 100)
		}
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:   s.category,
			Revenue:    round2(s.revenue),
			PctOfTotal: pct,
			Units:      s.units,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Revenue > breakdown[j].Revenue
	})
	return breakdown
}
