package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}

	return false
}

// CanTransitionTo implements the status state machine. The only transition
// rejected is delivered -> pending; everything else, including skipping
// states or moving backwards, is allowed. That mirrors the shipped behavior
// exactly and is flagged as a product decision, not tightened here.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return !(s == OrderStatusDelivered && next == OrderStatusPending)
}

// Deletable reports whether an order in this status may be removed. Orders
// already shipped or delivered are protected.
func (s OrderStatus) Deletable() bool {
	return s != OrderStatusShipped && s != OrderStatusDelivered
}

type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
	Product   *ProductSummary `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID              int64       `json:"id"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   *string     `json:"customer_phone,omitempty"`
	ShippingAddress *string     `json:"shipping_address,omitempty"`
	BillingAddress  *string     `json:"billing_address,omitempty"`
	PaymentMethod   *string     `json:"payment_method,omitempty"`
	PaymentID       *string     `json:"payment_id,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderSummary is the list-endpoint shape for orders.
type OrderSummary struct {
	ID           int64       `json:"id"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	CustomerName string      `json:"customer_name"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:           o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		CustomerName: o.CustomerName,
		CreatedAt:    o.CreatedAt,
	}
}

// CreateOrderItemRequest is one requested line. UnitPrice overrides the
// product's current price when set; the snapshot stored on the item is
// whichever applied.
type CreateOrderItemRequest struct {
	ProductID int64    `json:"product_id" validate:"required,gt=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
}

type CreateOrderRequest struct {
	CustomerName    string                   `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string                   `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone   *string                  `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	ShippingAddress *string                  `json:"shipping_address,omitempty"`
	BillingAddress  *string                  `json:"billing_address,omitempty"`
	PaymentMethod   *string                  `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	PaymentID       *string                  `json:"payment_id,omitempty" validate:"omitempty,max=100"`
	Notes           *string                  `json:"notes,omitempty"`
	Status          *OrderStatus             `json:"status,omitempty"`
	Items           []CreateOrderItemRequest `json:"items" validate:"dive"`
}

// UpdateOrderRequest is the header-only update: items are immutable once the
// order exists.
type UpdateOrderRequest struct {
	Status          *OrderStatus `json:"status,omitempty"`
	CustomerName    *string      `json:"customer_name,omitempty" validate:"omitempty,max=255"`
	CustomerEmail   *string      `json:"customer_email,omitempty" validate:"omitempty,email,max=255"`
	CustomerPhone   *string      `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	ShippingAddress *string      `json:"shipping_address,omitempty"`
	BillingAddress  *string      `json:"billing_address,omitempty"`
	PaymentMethod   *string      `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	PaymentID       *string      `json:"payment_id,omitempty" validate:"omitempty,max=100"`
	Notes           *string      `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// ListOrdersQuery mirrors ListProductsQuery for the order listing endpoints.
type ListOrdersQuery struct {
	Skip          int
	Limit         int
	Status        *OrderStatus
	CustomerEmail *string
	SortBy        string
	SortDesc      bool
}
