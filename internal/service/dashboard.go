package service

import (
	"context"
	"fmt"
	"time"

	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/repository"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

const (
	topCategoryLimit   = 5
	latestProductLimit = 10
	recentOrderLimit   = 10
)

type DashboardService interface {
	Overview(ctx context.Context, salesPeriod string) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// NormalizePeriod maps any unrecognized selector to "all"; an unknown value
// is not an error.
func NormalizePeriod(period string) string {
	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return period
	}
	return PeriodAll
}

// PeriodWindow computes the half-open [start, end) range for a period
// selector. A nil result means no date filter.
func PeriodWindow(period string, now time.Time) *repository.Window {
	loc := now.Location()

	switch period {
	case PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return &repository.Window{Start: start, End: start.AddDate(0, 0, 1)}
	case PeriodWeek:
		// ISO week, Monday through Sunday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
			AddDate(0, 0, -(weekday - 1))
		return &repository.Window{Start: monday, End: monday.AddDate(0, 0, 7)}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return &repository.Window{Start: start, End: start.AddDate(0, 1, 0)}
	case PeriodYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return &repository.Window{Start: start, End: start.AddDate(1, 0, 0)}
	}

	return nil
}

// Overview assembles the dashboard payload. The sub-queries are independent
// reads; point-in-time drift between them is accepted.
func (s *dashboardServiceImpl) Overview(ctx context.Context, salesPeriod string) (*dto.DashboardResponse, error) {
	period := NormalizePeriod(salesPeriod)

	// The response echoes what the caller asked for, unrecognized or not;
	// normalization only drives the query window.
	selected := salesPeriod
	if selected == "" {
		selected = PeriodAll
	}

	statusCounts, err := s.repo.OrderStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("order status counts: %w", err)
	}

	var totalOrders int64
	for _, count := range statusCounts {
		totalOrders += count
	}

	customers, err := s.repo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	quoteRequests, err := s.repo.CountQuoteRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("count quote requests: %w", err)
	}

	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	topCategories, err := s.repo.TopCategorySales(ctx, PeriodWindow(period, s.now()), topCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("top category sales: %w", err)
	}

	latest, err := s.repo.LatestProducts(ctx, latestProductLimit)
	if err != nil {
		return nil, fmt.Errorf("latest products: %w", err)
	}

	recent, err := s.repo.RecentOrders(ctx, recentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	latestProducts := make([]dto.DashboardProduct, len(latest))
	for i, p := range latest {
		latestProducts[i] = dto.DashboardProduct{
			ID:     p.ID,
			Name:   p.Name,
			Price:  p.Price,
			Images: p.Images,
		}
	}

	recentOrders := make([]dto.DashboardOrder, len(recent))
	for i, o := range recent {
		recentOrders[i] = dto.DashboardOrder{
			ID:          o.ID,
			UserID:      o.UserID,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt.Format(time.RFC3339),
			User:        o.User,
		}
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			TotalOrders:   totalOrders,
			PendingOrders: statusCounts[model.OrderPending],
			ConfirmedOrders: statusCounts[model.OrderProcessing] +
				statusCounts[model.OrderShipped] +
				statusCounts[model.OrderDelivered],
			CancelledOrders:    statusCounts[model.OrderCancelled],
			ShippedOrders:      statusCounts[model.OrderShipped],
			DeliveredOrders:    statusCounts[model.OrderDelivered],
			ReturnedOrders:     statusCounts[model.OrderReturned],
			TotalCustomers:     customers,
			TotalQuoteRequests: quoteRequests,
			TotalRevenue:       revenue,
		},
		TopCategories:       topCategories,
		LatestProducts:      latestProducts,
		RecentOrders:        recentOrders,
		SelectedSalesPeriod: selected,
	}, nil
}
