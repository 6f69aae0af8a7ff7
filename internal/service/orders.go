package service

import (
	"context"
	"errors"
	"fmt"

	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/queue"
	"engistore/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrInvalidQuantity  = errors.New("item quantity must be positive")
	ErrProductsNotFound = errors.New("some products not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrNotOrderOwner    = errors.New("order belongs to another user")
)

var vatRate = decimal.NewFromFloat(0.075)

var validOrderStatuses = map[string]bool{
	model.OrderPending:    true,
	model.OrderProcessing: true,
	model.OrderShipped:    true,
	model.OrderDelivered:  true,
	model.OrderCancelled:  true,
	model.OrderReturned:   true,
}

var validPaymentStatuses = map[string]bool{
	model.PaymentPending: true,
	model.PaymentPaid:    true,
	model.PaymentFailed:  true,
}

type OrderService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, id uint, userID uint, isAdmin bool) (*model.Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, req *dto.UpdateOrderStatusRequest) error
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   queue.Publisher
	logger      *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	publisher queue.Publisher,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	productIDs := make([]uint, 0, len(req.Items))
	quantities := make(map[uint]int, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		// Repeated lines for one product merge into a single item.
		if _, seen := quantities[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if len(products) != len(productIDs) {
		return nil, ErrProductsNotFound
	}

	subTotal := decimal.Zero
	items := make([]*model.OrderItem, len(products))
	for i, product := range products {
		qty := quantities[product.ID]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		subTotal = subTotal.Add(lineTotal)

		items[i] = &model.OrderItem{
			ProductID:  product.ID,
			Quantity:   qty,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
		}
	}

	vat := subTotal.Mul(vatRate).Round(2)
	shipping := decimal.Zero
	order := &model.Order{
		UserID:           &userID,
		ShippingAddress:  req.ShippingAddress,
		BillingAddress:   req.BillingAddress,
		SubTotal:         subTotal,
		VatAmount:        vat,
		ShippingCost:     shipping,
		TotalAmount:      subTotal.Add(vat).Add(shipping),
		Status:           model.OrderPending,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    model.PaymentPending,
		PaymentReference: uuid.NewString(),
		Notes:            req.Notes,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		for _, item := range items {
			item.OrderID = order.ID
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Items = make([]model.OrderItem, len(items))
	for i, item := range items {
		order.Items[i] = *item
	}

	if s.publisher != nil {
		if err := s.publisher.PublishNotification(ctx, queue.Event{Type: queue.EventOrderCreated, ID: order.ID}); err != nil {
			s.logger.Error("publish order created event", zap.Uint("order_id", order.ID), zap.Error(err))
		}
		if err := s.publisher.PublishPaymentCheck(ctx, order.ID); err != nil {
			s.logger.Error("publish payment check event", zap.Uint("order_id", order.ID), zap.Error(err))
		}
	}

	return order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id uint, userID uint, isAdmin bool) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && (order.UserID == nil || *order.UserID != userID) {
		return nil, ErrNotOrderOwner
	}

	return order, nil
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID uint) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateOrderStatusRequest) error {
	if req.Status != "" && !validOrderStatuses[req.Status] {
		return ErrInvalidStatus
	}
	if req.PaymentStatus != "" && !validPaymentStatuses[req.PaymentStatus] {
		return ErrInvalidStatus
	}
	if req.Status == "" && req.PaymentStatus == "" {
		return ErrInvalidStatus
	}

	return s.orderRepo.UpdateStatus(ctx, id, req.Status, req.PaymentStatus)
}
