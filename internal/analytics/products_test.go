package analytics

import (
	"testing"
	"time"

	"sellerscope_backend/internal/models"
)

func TestTopProductsRankingAndCap(t *testing.T) {
	d := day(2024, time.May, 2)
	current := []models.Order{
		testOrder(d, "c1", "Latte", "Coffee & Tea", 2, 4.50, 9.00, 0),
		testOrder(d, "c2", "Croissant", "Pastries", 1, 3.00, 3.00, 0),
		testOrder(d, "c3", "Avocado Toast", "Food", 1, 12.00, 12.00, 0),
		testOrder(d, "c1", "Croissant", "Pastries", 1, 3.00, 3.00, 0),
	}

	products := TopProducts(current, nil, 2)

	if len(products) != 2 {
		t.Fatalf("len = %d, want 2 (capped)", len(products))
	}
	if products[0].Name != "Avocado Toast" || products[1].Name != "Latte" {
		t.Errorf("ranking = [%s, %s], want [Avocado Toast, Latte]", products[0].Name, products[1].Name)
	}
	for i := 1; i < len(products); i++ {
		if products[i].Revenue > products[i-1].Revenue {
			t.Errorf("products not sorted descending by revenue at index %d", i)
		}
	}
}

func TestTopProductsAggregation(t *testing.T) {
	d := day(2024, time.May, 2)
	current := []models.Order{
		testOrder(d, "c1", "Latte", "Coffee & Tea", 1, 4.50, 4.50, 0),
		testOrder(d, "c2", "Latte", "Coffee & Tea", 1, 4.50, 4.50, 0),
	}
	previous := []models.Order{
		testOrder(d.AddDate(0, 0, -10), "c1", "Latte", "Coffee & Tea", 4, 4.50, 18.00, 0),
	}

	products := TopProducts(current, previous, 10)

	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	p := products[0]
	if p.Revenue != 9.00 || p.Units != 2 {
		t.Errorf("Latte aggregate = revenue %v units %d, want 9.00 / 2", p.Revenue, p.Units)
	}
	// Unit trend: 2 vs 4 units = -50%.
	if p.TrendPct != -50.0 {
		t.Errorf("TrendPct = %v, want -50.0", p.TrendPct)
	}
}

func TestTopProductsZeroPreviousConvention(t *testing.T) {
	d := day(2024, time.May, 2)
	current := []models.Order{testOrder(d, "c1", "Kombucha", "Beverages", 3, 4.00, 12.00, 0)}

	products := TopProducts(current, nil, 10)

	if products[0].TrendPct != 100 {
		t.Errorf("TrendPct = %v, want 100 for a product new this period", products[0].TrendPct)
	}
}

func TestTopProductsPreviousOnlyProductsOmitted(t *testing.T) {
	d := day(2024, time.May, 2)
	previous := []models.Order{testOrder(d.AddDate(0, 0, -10), "c1", "Smoothie", "Beverages", 1, 5.00, 5.00, 0)}
	current := []models.Order{testOrder(d, "c1", "Latte", "Coffee & Tea", 1, 4.50, 4.50, 0)}

	products := TopProducts(current, previous, 10)

	for _, p := range products {
		if p.Name == "Smoothie" {
			t.Error("product sold only in the previous window must not appear")
		}
	}
}

func TestTopProductsStableTies(t *testing.T) {
	d := day(2024, time.May, 2)
	// Same revenue; encounter order must be preserved.
	current := []models.Order{
		testOrder(d, "c1", "Green Tea", "Coffee & Tea", 1, 3.00, 3.00, 0),
		testOrder(d, "c2", "Americano", "Coffee & Tea", 1, 3.00, 3.00, 0),
	}

	products := TopProducts(current, nil, 10)

	if products[0].Name != "Green Tea" || products[1].Name != "Americano" {
		t.Errorf("tie order = [%s, %s], want encounter order [Green Tea, Americano]", products[0].Name, products[1].Name)
	}
}
