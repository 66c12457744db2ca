package analytics

import (
	"fmt"
	"time"

	"sellerscope_backend/internal/models"
)

// InsightsRequest is the input to BuildInsightsPayload. Orders is the full
// order history ordered by timestamp; Now is the reference instant for the
// report windows (zero means wall-clock now). ProductCatalog and StockLevels
// are optional and only feed the anomaly checks.
type InsightsRequest struct {
	Orders         []models.Order
	TimeRange      string
	Now            time.Time
	ProductCatalog []string
	StockLevels    map[string]int
}

// BuildInsightsPayload windows the order history, fans out to the KPI, trend,
// ranking, breakdown, anomaly and daily-series calculators and merges their
// results into one payload. The first error from any sub-step is propagated
// unchanged and the payload is never partially populated.
func BuildInsightsPayload(req InsightsRequest, cfg Config) (*models.InsightsPayload, error) {
	days, err := ParseTimeRange(req.TimeRange)
	if err != nil {
		return nil, err
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	currentWindow := CurrentWindow(now, days)
	previousWindow := PreviousWindow(now, days)
	currentOrders := FilterOrders(req.Orders, currentWindow)
	previousOrders := FilterOrders(req.Orders, previousWindow)

	kpis := ComputeKPIs(currentOrders)
	previousKPIs := ComputeKPIs(previousOrders)
	trends := ComputeTrends(currentOrders, previousOrders, fmt.Sprintf("vs previous %dd", days))

	anomalies := DetectAnomalies(
		currentOrders,
		kpis.Revenue,
		previousKPIs.Revenue,
		req.ProductCatalog,
		req.StockLevels,
		cfg,
	)

	return &models.InsightsPayload{
		TimeRange:         req.TimeRange,
		KPIs:              kpis,
		Trends:            trends,
		TopProducts:       TopProducts(currentOrders, previousOrders, cfg.MaxTopProducts),
		CategoryBreakdown: CategoryBreakdown(currentOrders),
		Anomalies:         anomalies,
		SampleOrders:      sampleOrders(currentOrders, cfg.MaxSampleOrders),
		DailySeries:       DailySeries(currentOrders, currentWindow),
	}, nil
}

// sampleOrders projects the trailing maxSamples current-window orders into the
// compact form used as grounding context for the LLM prompt.
func sampleOrders(orders []models.Order, maxSamples int) []models.SampleOrder {
	start := 0
	if len(orders) > maxSamples {
		start = len(orders) - maxSamples
	}

	samples := make([]models.SampleOrder, 0, len(orders)-start)
	for _, o := range orders[start:] {
		samples = append(samples, models.SampleOrder{
			Date:     o.OrderDate.UTC().Format(time.RFC3339),
			Product:  o.ProductName,
			Total:    o.TotalPrice,
			Category: o.Category,
		})
	}
	return samples
}
