package analytics

import "sellerscope_backend/internal/models"

// ComputeKPIs reduces an order set into the headline metric set for one
// period. An empty order set yields all-zero KPIs; no division by zero is
// ever surfaced to the caller.
func ComputeKPIs(orders []models.Order) models.KPIs {
	if len(orders) == 0 {
		return models.KPIs{}
	}

	var revenue, totalCost float64
	ordersByCustomer := map[string]int{}
	for _, o := range orders {
		revenue += o.TotalPrice
		totalCost += o.Cost
		ordersByCustomer[o.CustomerID]++
	}

	grossProfit := revenue - totalCost
	grossMarginPct := 0.0
	if revenue > 0 {
		grossMarginPct = grossProfit / revenue * 100
	}

	aov := revenue / float64(len(orders))

	returning := 0
	for _, n := range ordersByCustomer {
		if n > 1 {
			returning++
		}
	}
	returningPct := float64(returning) / float64(len(ordersByCustomer)) * 100

	return models.KPIs{
		Revenue:        round2(revenue),
		Orders:         len(orders),
		AOV:            round2(aov),
		ReturningPct:   round1(returningPct),
		GrossProfit:    round2(grossProfit),
		GrossMarginPct: round1(grossMarginPct),
	}
}
