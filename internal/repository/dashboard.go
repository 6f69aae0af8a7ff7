package repository

import (
	"context"
	"time"

	"engistore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Window is a half-open [Start, End) filter on orders.created_at.
type Window struct {
	Start time.Time
	End   time.Time
}

type CategorySales struct {
	CategoryName string          `json:"category_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

type DashboardRepository interface {
	OrderStatusCounts(ctx context.Context) (map[string]int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountQuoteRequests(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	TopCategorySales(ctx context.Context, window *Window, limit int) ([]CategorySales, error)
	LatestProducts(ctx context.Context, limit int) ([]*model.Product, error)
	RecentOrders(ctx context.Context, limit int) ([]*model.Order, error)
}

type dashboardRepoImpl struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepoImpl{
		db: db,
	}
}

func (r *dashboardRepoImpl) OrderStatusCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *dashboardRepoImpl) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_admin = ?", false).
		Count(&count).Error

	return count, err
}

func (r *dashboardRepoImpl) CountQuoteRequests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QuoteRequest{}).
		Count(&count).Error

	return count, err
}

// TotalRevenue is intentionally all-time: the dashboard's revenue figure does
// not follow the sales-period selector even though the category ranking does.
func (r *dashboardRepoImpl) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("SUM(total_amount)").
		Where("payment_status = ?", model.PaymentPaid).
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}

	return revenue.Decimal, nil
}

func (r *dashboardRepoImpl) TopCategorySales(ctx context.Context, window *Window, limit int) ([]CategorySales, error) {
	q := r.db.WithContext(ctx).
		Table("order_items").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.payment_status = ?", model.PaymentPaid).
		Where("categories.type = ?", model.CategoryTypeProduct).
		Select("categories.name AS category_name, SUM(order_items.total_price) AS total_sales").
		Group("categories.name").
		Order("total_sales DESC, categories.name ASC").
		Limit(limit)

	if window != nil {
		q = q.Where("orders.created_at >= ? AND orders.created_at < ?", window.Start, window.End)
	}

	var sales []CategorySales
	if err := q.Scan(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *dashboardRepoImpl) LatestProducts(ctx context.Context, limit int) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *dashboardRepoImpl) RecentOrders(ctx context.Context, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
