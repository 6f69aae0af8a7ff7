package service

import (
	"context"
	"testing"
	"time"

	"engistore/internal/model"
	"engistore/internal/repository"

	"github.com/shopspring/decimal"
)

func TestNormalizePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"today", "today"},
		{"week", "week"},
		{"month", "month"},
		{"year", "year"},
		{"all", "all"},
		{"", "all"},
		{"fortnight", "all"},
		{"TODAY", "all"},
	}

	for _, tc := range cases {
		if got := NormalizePeriod(tc.in); got != tc.want {
			t.Errorf("NormalizePeriod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPeriodWindow(t *testing.T) {
	// Tuesday 2024-07-09 15:04:05 UTC.
	now := time.Date(2024, 7, 9, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		period    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			period:    PeriodToday,
			wantStart: time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			period:    PeriodWeek,
			wantStart: time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			period:    PeriodMonth,
			wantStart: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			period:    PeriodYear,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		w := PeriodWindow(tc.period, now)
		if w == nil {
			t.Fatalf("PeriodWindow(%q) = nil, want window", tc.period)
		}
		if !w.Start.Equal(tc.wantStart) || !w.End.Equal(tc.wantEnd) {
			t.Errorf("PeriodWindow(%q) = [%v, %v), want [%v, %v)",
				tc.period, w.Start, w.End, tc.wantStart, tc.wantEnd)
		}
	}

	if w := PeriodWindow(PeriodAll, now); w != nil {
		t.Errorf("PeriodWindow(all) = %+v, want nil", w)
	}
}

func TestPeriodWindowWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2024, 7, 14, 9, 0, 0, 0, time.UTC)

	w := PeriodWindow(PeriodWeek, sunday)
	if w == nil {
		t.Fatal("PeriodWindow(week) = nil")
	}

	wantStart := time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Errorf("week window on Sunday = [%v, %v), want [%v, %v)",
			w.Start, w.End, wantStart, wantEnd)
	}
}

type fakeDashboardRepo struct {
	statusCounts map[string]int64
	revenue      decimal.Decimal
	window       *repository.Window
}

func (f *fakeDashboardRepo) OrderStatusCounts(ctx context.Context) (map[string]int64, error) {
	return f.statusCounts, nil
}

func (f *fakeDashboardRepo) CountCustomers(ctx context.Context) (int64, error) { return 4, nil }

func (f *fakeDashboardRepo) CountQuoteRequests(ctx context.Context) (int64, error) { return 2, nil }

func (f *fakeDashboardRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return f.revenue, nil
}

func (f *fakeDashboardRepo) TopCategorySales(ctx context.Context, window *repository.Window, limit int) ([]repository.CategorySales, error) {
	f.window = window
	return nil, nil
}

func (f *fakeDashboardRepo) LatestProducts(ctx context.Context, limit int) ([]*model.Product, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) RecentOrders(ctx context.Context, limit int) ([]*model.Order, error) {
	return nil, nil
}

func TestOverviewStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		statusCounts: map[string]int64{
			model.OrderPending:    3,
			model.OrderProcessing: 2,
			model.OrderShipped:    1,
			model.OrderDelivered:  4,
			model.OrderCancelled:  1,
		},
		revenue: decimal.NewFromInt(1000),
	}

	svc := &dashboardServiceImpl{
		repo: repo,
		now:  func() time.Time { return time.Date(2024, 7, 9, 12, 0, 0, 0, time.UTC) },
	}

	resp, err := svc.Overview(context.Background(), "month")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if resp.Stats.TotalOrders != 11 {
		t.Errorf("TotalOrders = %d, want 11", resp.Stats.TotalOrders)
	}
	// Confirmed covers everything in flight or completed.
	if resp.Stats.ConfirmedOrders != 7 {
		t.Errorf("ConfirmedOrders = %d, want 7", resp.Stats.ConfirmedOrders)
	}
	if resp.Stats.PendingOrders != 3 {
		t.Errorf("PendingOrders = %d, want 3", resp.Stats.PendingOrders)
	}
	if !resp.Stats.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalRevenue = %s, want 1000", resp.Stats.TotalRevenue)
	}
	if resp.SelectedSalesPeriod != "month" {
		t.Errorf("SelectedSalesPeriod = %q, want month", resp.SelectedSalesPeriod)
	}

	if repo.window == nil {
		t.Fatal("expected a period window for month")
	}
	wantStart := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !repo.window.Start.Equal(wantStart) {
		t.Errorf("window start = %v, want %v", repo.window.Start, wantStart)
	}
}

func TestOverviewUnknownPeriodHasNoWindow(t *testing.T) {
	repo := &fakeDashboardRepo{statusCounts: map[string]int64{}}
	svc := &dashboardServiceImpl{repo: repo, now: time.Now}

	resp, err := svc.Overview(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	// Unrecognized input is echoed verbatim, but queries fall back to all.
	if resp.SelectedSalesPeriod != "bogus" {
		t.Errorf("SelectedSalesPeriod = %q, want bogus", resp.SelectedSalesPeriod)
	}
	if repo.window != nil {
		t.Errorf("window = %+v, want nil", repo.window)
	}
}

func TestOverviewEmptyPeriodEchoesAll(t *testing.T) {
	repo := &fakeDashboardRepo{statusCounts: map[string]int64{}}
	svc := &dashboardServiceImpl{repo: repo, now: time.Now}

	resp, err := svc.Overview(context.Background(), "")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if resp.SelectedSalesPeriod != PeriodAll {
		t.Errorf("SelectedSalesPeriod = %q, want all", resp.SelectedSalesPeriod)
	}
	if repo.window != nil {
		t.Errorf("window = %+v, want nil", repo.window)
	}
}
