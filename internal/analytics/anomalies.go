package analytics

import (
	"fmt"
	"math"
	"sort"

	"sellerscope_backend/internal/models"
)

// DetectAnomalies runs the independent anomaly checks over one report period.
// productCatalog is the all-time list of product names used by the zero-sales
// check and stockLevels maps product name to current stock; passing nil for
// either simply disables its check. No check is fatal and each may contribute
// zero or more anomalies.
func DetectAnomalies(
	orders []models.Order,
	currentRevenue, previousRevenue float64,
	productCatalog []string,
	stockLevels map[string]int,
	cfg Config,
) []models.Anomaly {
	anomalies := []models.Anomaly{}

	// Revenue dip vs the previous period.
	if previousRevenue > 0 {
		change := (currentRevenue - previousRevenue) / previousRevenue
		if change <= cfg.RevenueDipThreshold {
			severity := models.SeverityMedium
			if change <= -0.25 {
				severity = models.SeverityHigh
			}
			anomalies = append(anomalies, models.Anomaly{
				Type:        models.AnomalyRevenueDip,
				Description: fmt.Sprintf("Revenue declined by %.1f%% compared to previous period", math.Abs(change*100)),
				Severity:    severity,
				MetricValue: metricValue(currentRevenue),
			})
		}
	}

	// Catalog products with zero sales in the period. Skipped for an empty
	// window, where flagging the whole catalog would only add noise.
	if len(orders) > 0 {
		sold := map[string]bool{}
		for _, o := range orders {
			sold[o.ProductName] = true
		}
		for _, name := range productCatalog {
			if !sold[name] {
				anomalies = append(anomalies, models.Anomaly{
					Type:        models.AnomalyZeroSales,
					Description: fmt.Sprintf("%s has had no sales in the selected period", name),
					Severity:    models.SeverityLow,
					ProductName: name,
				})
			}
		}
	}

	// Stock checks, sorted by product name for deterministic output.
	names := make([]string, 0, len(stockLevels))
	for name := range stockLevels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stock := stockLevels[name]
		switch {
		case stock == 0:
			anomalies = append(anomalies, models.Anomaly{
				Type:        models.AnomalyStockout,
				Description: fmt.Sprintf("%s is out of stock", name),
				Severity:    models.SeverityHigh,
				ProductName: name,
				MetricValue: metricValue(0),
			})
		case stock <= cfg.LowStockThreshold:
			severity := models.SeverityMedium
			if stock <= 10 {
				severity = models.SeverityHigh
			}
			anomalies = append(anomalies, models.Anomaly{
				Type:        models.AnomalyInventoryRisk,
				Description: fmt.Sprintf("%s is low on stock (%d units remaining)", name, stock),
				Severity:    severity,
				ProductName: name,
				MetricValue: metricValue(float64(stock)),
			})
		}
	}

	return anomalies
}

func metricValue(v float64) *float64 {
	return &v
}
