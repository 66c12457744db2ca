package seed

import (
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sellerscope_backend/internal/models"
)

// customer extends the stored record with the generation-only attributes that
// shape a realistic returning-customer distribution.
type customer struct {
	models.Customer
	isReturning    bool
	expectedOrders int
}

// GenerateProducts builds the fixed demo product catalog with randomized base
// prices inside each category's range.
func GenerateProducts() []models.Product {
	products := []models.Product{}
	for _, cat := range Categories {
		names := ProductNames[cat.Name]
		count := cat.Count
		if count > len(names) {
			count = len(names)
		}
		for i := 0; i < count; i++ {
			basePrice := roundMoney(gofakeit.Float64Range(cat.PriceMin, cat.PriceMax))
			products = append(products, models.Product{
				ID:           uuid.New().String(),
				Name:         names[i],
				Category:     cat.Name,
				BasePrice:    basePrice,
				Cost:         roundMoney(basePrice * cat.CostPct),
				InitialStock: gofakeit.Number(200, 800),
			})
		}
	}
	return products
}

// GenerateCustomers builds count demo customers, roughly 40% of them flagged
// as returning with 2-10 expected orders.
func GenerateCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, newCustomer().Customer)
	}
	return customers
}

func newCustomer() customer {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	c := customer{
		Customer: models.Customer{
			ID:        uuid.New().String(),
			FirstName: first,
			LastName:  last,
			Email:     strings.ToLower(first + "." + last + "@" + gofakeit.DomainName()),
		},
	}
	if gofakeit.Float64Range(0, 1) < ReturningCustomerRate {
		c.isReturning = true
		c.expectedOrders = gofakeit.Number(2, 10)
	} else {
		c.expectedOrders = 1
	}
	return c
}

// GenerateOrders builds a days-long order history over the given catalog and
// customers: weekday-heavy volume with gradual growth, category-weighted
// product picks and a bias toward returning customers.
func GenerateOrders(products []models.Product, customers []models.Customer, days int) []models.Order {
	if days <= 0 {
		days = DefaultDays
	}

	// Re-derive generation attributes for the stored customers.
	pool := make([]customer, 0, len(customers))
	for _, c := range customers {
		pc := customer{Customer: c, expectedOrders: 1}
		if gofakeit.Float64Range(0, 1) < ReturningCustomerRate {
			pc.isReturning = true
			pc.expectedOrders = gofakeit.Number(2, 10)
		}
		pool = append(pool, pc)
	}

	orderCount := map[string]int{}
	today := truncateToDay(time.Now())
	orders := []models.Order{}

	for dayOffset := 0; dayOffset < days; dayOffset++ {
		daysAgo := days - 1 - dayOffset
		date := today.AddDate(0, 0, -daysAgo)

		multiplier := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			multiplier = WeekendMultiplier
		}
		growth := 1 + float64(dayOffset)/float64(days)*GrowthRate
		variance := gofakeit.Float64Range(0.8, 1.2)
		dailyOrders := int(math.Round(BaseDailyOrders * multiplier * growth * variance))

		for i := 0; i < dailyOrders; i++ {
			product := pickProduct(products)
			cust := pickCustomer(pool, orderCount)

			quantity := gofakeit.Number(1, 3)
			priceVariance := gofakeit.Float64Range(1-PriceVariance, 1+PriceVariance)
			unitPrice := roundMoney(product.BasePrice * priceVariance)
			orderDate := date.Add(
				time.Duration(gofakeit.Number(6, 20))*time.Hour +
					time.Duration(gofakeit.Number(0, 59))*time.Minute)

			orders = append(orders, models.Order{
				ID:          uuid.New().String(),
				OrderDate:   orderDate,
				CustomerID:  cust.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Category:    product.Category,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
				TotalPrice:  roundMoney(unitPrice * float64(quantity)),
				Cost:        roundMoney(product.Cost * float64(quantity)),
			})
			orderCount[cust.ID]++
		}
	}

	return orders
}

// pickProduct picks a category by weight, then a random product from it.
func pickProduct(products []models.Product) models.Product {
	r := gofakeit.Float64Range(0, 1)
	cumulative := 0.0
	selected := Categories[0].Name
	for _, cat := range Categories {
		cumulative += cat.Weight
		if r <= cumulative {
			selected = cat.Name
			break
		}
	}

	inCategory := []models.Product{}
	for _, p := range products {
		if p.Category == selected {
			inCategory = append(inCategory, p)
		}
	}
	if len(inCategory) == 0 {
		return products[gofakeit.Number(0, len(products)-1)]
	}
	return inCategory[gofakeit.Number(0, len(inCategory)-1)]
}

// pickCustomer prefers returning customers that have not yet reached their
// expected order count.
func pickCustomer(pool []customer, orderCount map[string]int) customer {
	available := []customer{}
	returning := []customer{}
	for _, c := range pool {
		if orderCount[c.ID] < c.expectedOrders {
			available = append(available, c)
			if c.isReturning {
				returning = append(returning, c)
			}
		}
	}
	if len(available) == 0 {
		return pool[gofakeit.Number(0, len(pool)-1)]
	}
	if len(returning) > 0 && gofakeit.Float64Range(0, 1) < 0.6 {
		return returning[gofakeit.Number(0, len(returning)-1)]
	}
	return available[gofakeit.Number(0, len(available)-1)]
}

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
