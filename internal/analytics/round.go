package analytics

import "github.com/shopspring/decimal"

// Rounding is applied at aggregate boundaries only (per KPI, per product, per
// category), never per line item, so report figures stay reproducible.

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
