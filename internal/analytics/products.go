package analytics

import (
	"sort"

	"sellerscope_backend/internal/models"
)

// TopProducts aggregates current-window orders by product name, computes each
// product's unit trend versus the previous window and returns at most maxProducts
// entries ranked by revenue. The sort is stable so revenue ties keep encounter
// order. Products that only sold in the previous window are not emitted.
func TopProducts(currentOrders, previousOrders []models.Order, maxProducts int) []models.TopProduct {
	type productStats struct {
		name     string
		category string
		revenue  float64
		units    int
	}

	// Aggregate in first-seen order so output is deterministic across runs.
	statsIndex := map[string]int{}
	stats := []productStats{}
	for _, o := range currentOrders {
		i, ok := statsIndex[o.ProductName]
		if !ok {
			i = len(stats)
			statsIndex[o.ProductName] = i
			stats = append(stats, productStats{name: o.ProductName, category: o.Category})
		}
		stats[i].revenue += o.TotalPrice
		stats[i].units += o.Quantity
	}

	previousUnits := map[string]int{}
	for _, o := range previousOrders {
		previousUnits[o.ProductName] += o.Quantity
	}

	products := make([]models.TopProduct, 0, len(stats))
	for _, s := range stats {
		products = append(products, models.TopProduct{
			Name:     s.name,
			Category: s.category,
			Revenue:  round2(s.revenue),
			Units:    s.units,
			TrendPct: percentChange(float64(s.units), float64(previousUnits[s.name])),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})

	if len(products) > maxProducts {
		products = products[:maxProducts]
	}
	return products
}
