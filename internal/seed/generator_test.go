package seed

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestGenerateProducts(t *testing.T) {
	products := GenerateProducts()

	wantCount := 0
	for _, cat := range Categories {
		wantCount += cat.Count
	}
	if len(products) != wantCount {
		t.Fatalf("len(products) = %d, want %d", len(products), wantCount)
	}

	ranges := map[string]CategorySpec{}
	for _, cat := range Categories {
		ranges[cat.Name] = cat
	}

	seen := map[string]bool{}
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			t.Fatalf("product missing id or name: %+v", p)
		}
		if seen[p.Name] {
			t.Errorf("duplicate product name %q", p.Name)
		}
		seen[p.Name] = true

		cat, ok := ranges[p.Category]
		if !ok {
			t.Fatalf("unknown category %q", p.Category)
		}
		if p.BasePrice < cat.PriceMin-0.01 || p.BasePrice > cat.PriceMax+0.01 {
			t.Errorf("%s base price %.2f outside [%.2f, %.2f]", p.Name, p.BasePrice, cat.PriceMin, cat.PriceMax)
		}
		if p.Cost <= 0 || p.Cost >= p.BasePrice {
			t.Errorf("%s cost %.2f not below price %.2f", p.Name, p.Cost, p.BasePrice)
		}
		if p.InitialStock < 200 || p.InitialStock > 800 {
			t.Errorf("%s stock %d outside [200, 800]", p.Name, p.InitialStock)
		}
	}
}

func TestGenerateCustomers(t *testing.T) {
	customers := GenerateCustomers(50)
	if len(customers) != 50 {
		t.Fatalf("len(customers) = %d, want 50", len(customers))
	}
	for _, c := range customers {
		if c.ID == "" || c.FirstName == "" || c.LastName == "" {
			t.Fatalf("customer missing fields: %+v", c)
		}
		if !strings.Contains(c.Email, "@") || c.Email != strings.ToLower(c.Email) {
			t.Errorf("email %q not a lowercase address", c.Email)
		}
	}
}

func TestGenerateOrders(t *testing.T) {
	products := GenerateProducts()
	customers := GenerateCustomers(30)
	days := 14
	orders := GenerateOrders(products, customers, days)

	if len(orders) == 0 {
		t.Fatal("no orders generated")
	}

	productByID := map[string]int{}
	for i, p := range products {
		productByID[p.ID] = i
	}
	customerIDs := map[string]bool{}
	for _, c := range customers {
		customerIDs[c.ID] = true
	}

	earliest := truncateToDay(time.Now()).AddDate(0, 0, -(days - 1))
	for _, o := range orders {
		if o.OrderDate.Before(earliest) || o.OrderDate.After(time.Now().Add(24*time.Hour)) {
			t.Errorf("order date %s outside the %d-day history", o.OrderDate, days)
		}
		if o.Quantity < 1 || o.Quantity > 3 {
			t.Errorf("quantity %d outside [1, 3]", o.Quantity)
		}
		if !customerIDs[o.CustomerID] {
			t.Errorf("order references unknown customer %q", o.CustomerID)
		}

		idx, ok := productByID[o.ProductID]
		if !ok {
			t.Fatalf("order references unknown product %q", o.ProductID)
		}
		p := products[idx]
		if o.ProductName != p.Name || o.Category != p.Category {
			t.Errorf("order product fields %q/%q do not match catalog %q/%q", o.ProductName, o.Category, p.Name, p.Category)
		}

		if got, want := o.TotalPrice, roundMoney(o.UnitPrice*float64(o.Quantity)); math.Abs(got-want) > 0.001 {
			t.Errorf("total %.2f != unit %.2f * qty %d", got, o.UnitPrice, o.Quantity)
		}
		if got, want := o.Cost, roundMoney(p.Cost*float64(o.Quantity)); math.Abs(got-want) > 0.001 {
			t.Errorf("cost %.2f != product cost %.2f * qty %d", got, p.Cost, o.Quantity)
		}
	}
}

func TestGenerateOrdersDefaultsDays(t *testing.T) {
	products := GenerateProducts()
	customers := GenerateCustomers(10)
	orders := GenerateOrders(products, customers, 0)

	if len(orders) == 0 {
		t.Fatal("no orders generated")
	}
	earliest := truncateToDay(time.Now()).AddDate(0, 0, -(DefaultDays - 1))
	for _, o := range orders {
		if o.OrderDate.Before(earliest) {
			t.Fatalf("order date %s predates the default history window", o.OrderDate)
		}
	}
}
