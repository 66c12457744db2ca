package analytics

import "sellerscope_backend/internal/models"

// ComputeTrends compares the KPIs of two adjacent periods and produces
// percentage deltas for revenue, order count and AOV.
func ComputeTrends(currentOrders, previousOrders []models.Order, periodLabel string) models.TrendData {
	current := ComputeKPIs(currentOrders)
	previous := ComputeKPIs(previousOrders)

	return models.TrendData{
		RevenueChangePct: percentChange(current.Revenue, previous.Revenue),
		OrdersChangePct:  percentChange(float64(current.Orders), float64(previous.Orders)),
		AOVChangePct:     percentChange(current.AOV, previous.AOV),
		PeriodLabel:      periodLabel,
	}
}

// percentChange returns the change from previous to current as a percentage,
// rounded to 1 decimal. A zero previous value maps to 100 when anything was
// gained and 0 when both periods are zero.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}
