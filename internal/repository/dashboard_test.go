package repository

import (
	"context"
	"testing"
	"time"

	"engistore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedSalesData(t *testing.T, db *gorm.DB) {
	t.Helper()

	customerID := uint(1)
	users := []*model.User{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", PasswordHash: "x"},
		{ID: 2, Name: "Admin", Email: "admin@example.com", PasswordHash: "x", IsAdmin: true},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	categories := []*model.Category{
		{ID: 1, Name: "Pumps", Slug: "pumps", Type: model.CategoryTypeProduct},
		{ID: 2, Name: "Valves", Slug: "valves", Type: model.CategoryTypeProduct},
		{ID: 3, Name: "News", Slug: "news", Type: model.CategoryTypeBlog},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	products := []*model.Product{
		{ID: 1, Name: "Centrifugal Pump", Slug: "centrifugal-pump", Price: decimal.NewFromInt(100), CategoryID: 1},
		{ID: 2, Name: "Gate Valve", Slug: "gate-valve", Price: decimal.NewFromInt(50), CategoryID: 2},
		{ID: 3, Name: "Oddball", Slug: "oddball", Price: decimal.NewFromInt(500), CategoryID: 3},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}

	july5 := time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)
	june10 := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	orders := []*model.Order{
		// Paid inside July: Pumps 200 + Valves 50.
		{ID: 1, UserID: &customerID, TotalAmount: decimal.NewFromInt(250),
			Status: model.OrderDelivered, PaymentStatus: model.PaymentPaid, CreatedAt: july5},
		// Paid in June: Valves 200.
		{ID: 2, UserID: &customerID, TotalAmount: decimal.NewFromInt(200),
			Status: model.OrderDelivered, PaymentStatus: model.PaymentPaid, CreatedAt: june10},
		// Unpaid: must not count anywhere.
		{ID: 3, UserID: &customerID, TotalAmount: decimal.NewFromInt(1000),
			Status: model.OrderPending, PaymentStatus: model.PaymentPending, CreatedAt: july5},
		// Paid, but the product sits in a blog-type category.
		{ID: 4, UserID: &customerID, TotalAmount: decimal.NewFromInt(500),
			Status: model.OrderDelivered, PaymentStatus: model.PaymentPaid, CreatedAt: july5},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("seed orders: %v", err)
	}

	items := []*model.OrderItem{
		{OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(200)},
		{OrderID: 1, ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(50)},
		{OrderID: 2, ProductID: 2, Quantity: 4, UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(200)},
		{OrderID: 3, ProductID: 1, Quantity: 10, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(1000)},
		{OrderID: 4, ProductID: 3, Quantity: 1, UnitPrice: decimal.NewFromInt(500), TotalPrice: decimal.NewFromInt(500)},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed order items: %v", err)
	}
}

func TestTotalRevenueExcludesUnpaid(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	repo := NewDashboardRepository(db)

	revenue, err := repo.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}

	// 250 + 200 + 500 paid; the 1000 pending order stays out.
	if !revenue.Equal(decimal.NewFromInt(950)) {
		t.Errorf("revenue = %s, want 950", revenue)
	}
}

func TestTotalRevenueEmptyTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	revenue, err := repo.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if !revenue.IsZero() {
		t.Errorf("revenue = %s, want 0", revenue)
	}
}

func TestTopCategorySalesAllTime(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	repo := NewDashboardRepository(db)

	sales, err := repo.TopCategorySales(context.Background(), nil, 5)
	if err != nil {
		t.Fatalf("TopCategorySales: %v", err)
	}

	if len(sales) != 2 {
		t.Fatalf("got %d categories, want 2 (blog category excluded)", len(sales))
	}
	if sales[0].CategoryName != "Valves" || !sales[0].TotalSales.Equal(decimal.NewFromInt(250)) {
		t.Errorf("first = %s %s, want Valves 250", sales[0].CategoryName, sales[0].TotalSales)
	}
	if sales[1].CategoryName != "Pumps" || !sales[1].TotalSales.Equal(decimal.NewFromInt(200)) {
		t.Errorf("second = %s %s, want Pumps 200", sales[1].CategoryName, sales[1].TotalSales)
	}

	for i := 1; i < len(sales); i++ {
		if sales[i].TotalSales.GreaterThan(sales[i-1].TotalSales) {
			t.Errorf("sales not sorted non-increasing at %d", i)
		}
	}
}

func TestTopCategorySalesWindow(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	repo := NewDashboardRepository(db)

	window := &Window{
		Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	sales, err := repo.TopCategorySales(context.Background(), window, 5)
	if err != nil {
		t.Fatalf("TopCategorySales: %v", err)
	}

	// The June order drops out, so Pumps leads inside July.
	if len(sales) != 2 {
		t.Fatalf("got %d categories, want 2", len(sales))
	}
	if sales[0].CategoryName != "Pumps" || !sales[0].TotalSales.Equal(decimal.NewFromInt(200)) {
		t.Errorf("first = %s %s, want Pumps 200", sales[0].CategoryName, sales[0].TotalSales)
	}
	if sales[1].CategoryName != "Valves" || !sales[1].TotalSales.Equal(decimal.NewFromInt(50)) {
		t.Errorf("second = %s %s, want Valves 50", sales[1].CategoryName, sales[1].TotalSales)
	}
}

func TestTopCategorySalesLimit(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	repo := NewDashboardRepository(db)

	sales, err := repo.TopCategorySales(context.Background(), nil, 1)
	if err != nil {
		t.Fatalf("TopCategorySales: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("got %d categories, want 1", len(sales))
	}
	if sales[0].CategoryName != "Valves" {
		t.Errorf("top = %s, want Valves", sales[0].CategoryName)
	}
}

func TestOrderStatusCountsAndCustomers(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	repo := NewDashboardRepository(db)

	counts, err := repo.OrderStatusCounts(context.Background())
	if err != nil {
		t.Fatalf("OrderStatusCounts: %v", err)
	}
	if counts[model.OrderDelivered] != 3 || counts[model.OrderPending] != 1 {
		t.Errorf("counts = %v, want delivered 3 pending 1", counts)
	}

	customers, err := repo.CountCustomers(context.Background())
	if err != nil {
		t.Fatalf("CountCustomers: %v", err)
	}
	// Admin accounts are not customers.
	if customers != 1 {
		t.Errorf("customers = %d, want 1", customers)
	}
}
