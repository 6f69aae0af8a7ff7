package repository

import (
	"context"
	"errors"
	"testing"

	"engistore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCancelIfUnpaid(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	pending := &model.Order{
		TotalAmount:   decimal.NewFromInt(100),
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPending,
	}
	paid := &model.Order{
		TotalAmount:   decimal.NewFromInt(100),
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPaid,
	}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("seed pending: %v", err)
	}
	if err := db.Create(paid).Error; err != nil {
		t.Fatalf("seed paid: %v", err)
	}

	cancelled, err := repo.CancelIfUnpaid(ctx, pending.ID)
	if err != nil {
		t.Fatalf("CancelIfUnpaid: %v", err)
	}
	if !cancelled {
		t.Error("pending unpaid order should cancel")
	}

	got, err := repo.FindByID(ctx, pending.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != model.OrderCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	// A paid order is left alone.
	cancelled, err = repo.CancelIfUnpaid(ctx, paid.ID)
	if err != nil {
		t.Fatalf("CancelIfUnpaid paid: %v", err)
	}
	if cancelled {
		t.Error("paid order must not cancel")
	}

	// Second pass on the already-cancelled order is a no-op.
	cancelled, err = repo.CancelIfUnpaid(ctx, pending.ID)
	if err != nil {
		t.Fatalf("CancelIfUnpaid again: %v", err)
	}
	if cancelled {
		t.Error("cancelled order must not cancel twice")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), 999, model.OrderShipped, "")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUpdateStatusPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &model.Order{
		TotalAmount:   decimal.NewFromInt(100),
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPending,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.UpdateStatus(ctx, order.ID, "", model.PaymentPaid); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != model.OrderPending {
		t.Errorf("status = %q, want pending untouched", got.Status)
	}
	if got.PaymentStatus != model.PaymentPaid {
		t.Errorf("payment_status = %q, want paid", got.PaymentStatus)
	}
}
