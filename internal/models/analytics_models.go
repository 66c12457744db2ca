package models

// KPIs is the headline metric set for one report period.
// All fields are zero when the period had no orders.
type KPIs struct {
	Revenue        float64 `json:"revenue"`
	Orders         int     `json:"orders"`
	AOV            float64 `json:"aov"`
	ReturningPct   float64 `json:"returning_pct"`
	GrossProfit    float64 `json:"gross_profit"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
}

// TrendData holds period-over-period percentage changes for the KPI headline
// figures, e.g. "vs previous 30d".
type TrendData struct {
	RevenueChangePct float64 `json:"revenue_change_pct"`
	OrdersChangePct  float64 `json:"orders_change_pct"`
	AOVChangePct     float64 `json:"aov_change_pct"`
	PeriodLabel      string  `json:"period_label"`
}

// TopProduct is one entry in the revenue-ranked product list. TrendPct is
// computed from unit counts versus the previous window, not revenue.
type TopProduct struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Units    int     `json:"units"`
	TrendPct float64 `json:"trend_pct"`
}

// CategoryBreakdown is one category's share of the period.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	PctOfTotal float64 `json:"pct_of_total"`
	Units      int     `json:"units"`
}

// Anomaly types.
const (
	AnomalyRevenueDip    = "revenue_dip"
	AnomalyZeroSales     = "zero_sales"
	AnomalyInventoryRisk = "inventory_risk"
	AnomalyStockout      = "stockout"
)

// Anomaly severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Anomaly is a single flagged condition. ProductName and MetricValue are only
// set for checks they apply to; a nil MetricValue means the check carries no
// numeric figure, not that the figure was zero.
type Anomaly struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	ProductName string   `json:"product_name,omitempty"`
	MetricValue *float64 `json:"metric_value,omitempty"`
}

// SampleOrder is the projection of an order used for prompt grounding.
type SampleOrder struct {
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	Total    float64 `json:"total"`
	Category string  `json:"category"`
}

// DailyChartPoint is one day of the zero-filled revenue series. Date is the
// ISO calendar date, Label a short display form for chart axes.
type DailyChartPoint struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// InsightsPayload is the aggregate analytics response. It is the full contract
// surface handed to both the dashboard and the LLM prompt builder.
type InsightsPayload struct {
	TimeRange         string              `json:"time_range"`
	KPIs              KPIs                `json:"kpis"`
	Trends            TrendData           `json:"trends"`
	TopProducts       []TopProduct        `json:"top_products"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	Anomalies         []Anomaly           `json:"anomalies"`
	SampleOrders      []SampleOrder       `json:"sample_orders"`
	DailySeries       []DailyChartPoint   `json:"daily_series"`
}
