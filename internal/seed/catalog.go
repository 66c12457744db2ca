package seed

// CategorySpec describes one demo category: how many products it carries,
// their price range, the cost fraction of price and the category's share of
// total order volume.
type CategorySpec struct {
	Name     string
	Count    int
	PriceMin float64
	PriceMax float64
	CostPct  float64
	Weight   float64
}

// Categories is the fixed demo catalog. Weights sum to 1.0.
var Categories = []CategorySpec{
	{Name: "Coffee & Tea", Count: 8, PriceMin: 3, PriceMax: 7, CostPct: 0.25, Weight: 0.50},
	{Name: "Pastries", Count: 6, PriceMin: 3, PriceMax: 6, CostPct: 0.30, Weight: 0.25},
	{Name: "Food", Count: 5, PriceMin: 8, PriceMax: 15, CostPct: 0.35, Weight: 0.15},
	{Name: "Beverages", Count: 4, PriceMin: 2, PriceMax: 5, CostPct: 0.20, Weight: 0.08},
	{Name: "Merchandise", Count: 2, PriceMin: 10, PriceMax: 30, CostPct: 0.40, Weight: 0.02},
}

// ProductNames lists the fixed product names per category.
var ProductNames = map[string][]string{
	"Coffee & Tea": {"Espresso", "Cappuccino", "Latte", "Cold Brew", "Chai Latte", "Americano", "Green Tea", "Matcha Latte"},
	"Pastries":     {"Croissant", "Blueberry Muffin", "Chocolate Chip Cookie", "Cinnamon Roll", "Almond Scone", "Banana Bread"},
	"Food":         {"Avocado Toast", "Turkey Sandwich", "Caesar Salad", "Breakfast Burrito", "Veggie Wrap"},
	"Beverages":    {"Orange Juice", "Bottled Water", "Kombucha", "Smoothie"},
	"Merchandise":  {"Reusable Cup", "Coffee Beans (12oz)"},
}

// Generation tunables for the demo data set.
const (
	DefaultDays           = 90
	BaseDailyOrders       = 25
	WeekendMultiplier     = 0.6
	GrowthRate            = 0.15 // 15% growth over the generated period
	PriceVariance         = 0.1  // +-10%
	DefaultCustomerCount  = 300
	ReturningCustomerRate = 0.40
)
