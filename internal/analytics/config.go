package analytics

// Config holds the tunable constants of the analytics pipeline. Zero values
// are not meaningful; start from DefaultConfig and override as needed.
type Config struct {
	MaxTopProducts      int
	MaxSampleOrders     int
	RevenueDipThreshold float64 // fractional change, e.g. -0.15 for a 15% dip
	LowStockThreshold   int
}

// DefaultConfig returns the stock thresholds used by the dashboard.
func DefaultConfig() Config {
	return Config{
		MaxTopProducts:      10,
		MaxSampleOrders:     20,
		RevenueDipThreshold: -0.15,
		LowStockThreshold:   20,
	}
}
