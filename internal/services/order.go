package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopcore/products-orders-api/internal/api/middleware"
	"github.com/shopcore/products-orders-api/internal/cache"
	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
	repository "github.com/shopcore/products-orders-api/internal/repositories"
	"github.com/shopcore/products-orders-api/pkg/sendgrid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListOrders(ctx context.Context, q models.ListOrdersQuery) ([]*models.Order, error)
}

type orderService struct {
	repo  repository.OrderRepository
	cache cache.Cache
	email sendgrid.EmailService
}

// NewOrderService wires the order workflow. email may be nil, in which case
// confirmation mails are skipped.
func NewOrderService(repo repository.OrderRepository, cache cache.Cache, email sendgrid.EmailService) OrderService {
	return &orderService{repo: repo, cache: cache, email: email}
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, appErrors.EmptyOrderError()
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, appErrors.ValidationError(fmt.Sprintf("Invalid order status: %s", *req.Status))
	}

	req.ShippingAddress = sanitizeOptional(req.ShippingAddress)
	req.BillingAddress = sanitizeOptional(req.BillingAddress)
	req.Notes = sanitizeOptional(req.Notes)

	order, err := s.repo.CreateOrderWithItems(ctx, req)
	if err != nil {
		if _, ok := appErrors.IsAppError(err); ok {
			return nil, err
		}

		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	logger := middleware.LoggerFromContext(ctx)

	// The workflow just decremented inventory on every line's product, so the
	// cached reads must go. The DB stays authoritative if a delete fails.
	for _, item := range req.Items {
		key := cache.Key(cache.ProductKeyPrefix, item.ProductID)
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Warn("failed to invalidate product cache", "key", key, "error", err)
		}
	}

	// Confirmation mail is best-effort; the order stands either way.
	if s.email != nil {
		go func(order models.Order) {
			if err := s.email.SendOrderConfirmation(context.WithoutCancel(ctx), &order); err != nil {
				logger.Warn("failed to send order confirmation", "orderID", order.ID, "error", err)
			}
		}(*order)
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.repo.GetOrderWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.OrderNotFoundError(id)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.OrderNotFoundError(id)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, appErrors.ValidationError(fmt.Sprintf("Invalid order status: %s", *req.Status))
		}

		if !order.Status.CanTransitionTo(*req.Status) {
			return nil, appErrors.InvalidStatusTransitionError(string(order.Status), string(*req.Status))
		}

		order.Status = *req.Status
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}

	if req.CustomerEmail != nil {
		order.CustomerEmail = *req.CustomerEmail
	}

	if req.CustomerPhone != nil {
		order.CustomerPhone = req.CustomerPhone
	}

	if req.ShippingAddress != nil {
		order.ShippingAddress = sanitizeOptional(req.ShippingAddress)
	}

	if req.BillingAddress != nil {
		order.BillingAddress = sanitizeOptional(req.BillingAddress)
	}

	if req.PaymentMethod != nil {
		order.PaymentMethod = req.PaymentMethod
	}

	if req.PaymentID != nil {
		order.PaymentID = req.PaymentID
	}

	if req.Notes != nil {
		order.Notes = sanitizeOptional(req.Notes)
	}

	err = s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update order").WithError(err)
	}

	return order, nil
}

// UpdateOrderStatus moves the order through the status machine. Cancelling an
// order does not restock its items; inventory only ever moves at creation
// time.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, appErrors.ValidationError(fmt.Sprintf("Invalid order status: %s", status))
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.OrderNotFoundError(id)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, appErrors.InvalidStatusTransitionError(string(order.Status), string(status))
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.OrderNotFoundError(id)
		}

		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = status

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.OrderNotFoundError(id)
		}

		return appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !order.Status.Deletable() {
		return appErrors.InvalidOrderDeletionError(string(order.Status))
	}

	err = s.repo.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.OrderNotFoundError(id)
		}

		return appErrors.DatabaseError("Failed to delete order").WithError(err)
	}

	return nil
}

func (s *orderService) ListOrders(ctx context.Context, q models.ListOrdersQuery) ([]*models.Order, error) {
	orders, err := s.repo.ListOrders(ctx, q)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}
