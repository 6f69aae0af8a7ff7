package service

import (
	"context"
	"errors"
	"testing"

	"engistore/internal/cache"
	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Centrifugal Pump", "centrifugal-pump"},
		{"Valves & Fittings", "valves-fittings"},
		{"  Trailing  ", "trailing"},
		{"Model X-200", "model-x-200"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func newCatalogServiceForTest(t *testing.T) CatalogService {
	t.Helper()

	db := newTestDB(t)
	if err := db.Create(&model.Category{ID: 1, Name: "Pumps", Slug: "pumps", Type: model.CategoryTypeProduct}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	// nil redis client: cache layer degrades to straight DB reads.
	return NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		cache.NewCatalogCache(nil),
		zaptest.NewLogger(t),
	)
}

func TestProductCRUDAndSlugFallback(t *testing.T) {
	svc := newCatalogServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.ProductRequest{
		Name:       "Centrifugal Pump",
		Price:      decimal.NewFromInt(100),
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.Slug != "centrifugal-pump" {
		t.Errorf("slug = %q, want generated centrifugal-pump", created.Slug)
	}

	got, err := svc.GetProductBySlug(ctx, "centrifugal-pump")
	if err != nil {
		t.Fatalf("GetProductBySlug: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got product %d, want %d", got.ID, created.ID)
	}

	if _, err := svc.GetProductBySlug(ctx, "no-such-product"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing slug err = %v, want gorm.ErrRecordNotFound", err)
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, err := svc.GetProductBySlug(ctx, "centrifugal-pump"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted product err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestListProductsPagingDefaults(t *testing.T) {
	svc := newCatalogServiceForTest(t)
	ctx := context.Background()

	for _, name := range []string{"Pump A", "Pump B", "Pump C"} {
		if _, err := svc.CreateProduct(ctx, &dto.ProductRequest{
			Name: name, Price: decimal.NewFromInt(10), CategoryID: 1,
		}); err != nil {
			t.Fatalf("CreateProduct %s: %v", name, err)
		}
	}

	resp, err := svc.ListProducts(ctx, repository.ProductListOptions{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if resp.Total != 3 || len(resp.Products) != 3 {
		t.Errorf("total = %d len = %d, want 3/3", resp.Total, len(resp.Products))
	}
	if resp.Page != 1 || resp.PerPage != 20 {
		t.Errorf("paging = %d/%d, want 1/20", resp.Page, resp.PerPage)
	}

	resp, err = svc.ListProducts(ctx, repository.ProductListOptions{Search: "Pump B"})
	if err != nil {
		t.Fatalf("ListProducts search: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("search total = %d, want 1", resp.Total)
	}
}
