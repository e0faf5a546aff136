package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
)

type OrderRepository interface {
	CreateOrderWithItems(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	GetOrderWithItems(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
	ListOrders(ctx context.Context, q models.ListOrdersQuery) ([]*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, status, total_amount, customer_name, customer_email,
	customer_phone, shipping_address, billing_address, payment_method, payment_id,
	notes, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*models.Order, error) {
	order := &models.Order{}

	err := row.Scan(&order.ID, &order.Status, &order.TotalAmount, &order.CustomerName,
		&order.CustomerEmail, &order.CustomerPhone, &order.ShippingAddress,
		&order.BillingAddress, &order.PaymentMethod, &order.PaymentID, &order.Notes,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrderWithItems runs the whole order-creation workflow inside one
// transaction: validate every line, compute the total, insert the header,
// then insert items and decrement inventory per line. Nothing is persisted
// unless every step succeeds.
func (r *orderRepository) CreateOrderWithItems(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	// Each line becomes one order_items row and the table is unique on
	// (order_id, product_id), so repeated products are rejected up front
	// instead of surfacing as a constraint violation mid-transaction.
	seen := make(map[int64]int, len(req.Items))

	var duplicates []int64

	for _, item := range req.Items {
		seen[item.ProductID]++
		if seen[item.ProductID] == 2 {
			duplicates = append(duplicates, item.ProductID)
		}
	}

	if len(duplicates) > 0 {
		return nil, appErrors.DuplicateOrderLineError(duplicates)
	}

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning order transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	// Pre-validation pass: read every product before writing anything, so
	// the common all-valid case never touches rollback paths, and failures
	// report every offending line at once rather than the first.
	var (
		invalidIDs   []int64
		insufficient []appErrors.ValidationRecord
		totalAmount  float64
	)

	for _, item := range req.Items {
		product, err := getProduct(dbCtx, tx, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				invalidIDs = append(invalidIDs, item.ProductID)

				continue
			}

			return nil, err
		}

		if product.InventoryCount < item.Quantity {
			insufficient = append(insufficient, appErrors.ValidationRecord{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: product.InventoryCount,
			})

			continue
		}

		unitPrice := product.Price
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}

		totalAmount += unitPrice * float64(item.Quantity)
	}

	if len(invalidIDs) > 0 {
		return nil, appErrors.ProductNotFoundError(invalidIDs)
	}

	if len(insufficient) > 0 {
		return nil, appErrors.InsufficientInventoryError(insufficient)
	}

	status := models.OrderStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	order := &models.Order{
		Status:          status,
		TotalAmount:     totalAmount,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentID:       req.PaymentID,
		Notes:           req.Notes,
	}

	headerQuery := `INSERT INTO orders (status, total_amount, customer_name, customer_email, customer_phone, shipping_address, billing_address, payment_method, payment_id, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, headerQuery, order.Status, order.TotalAmount,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.BillingAddress, order.PaymentMethod,
		order.PaymentID, order.Notes).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting order header: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	for _, item := range req.Items {
		// Defensive re-check: the product may have vanished since the
		// validation pass. Any failure here aborts the whole order.
		product, err := getProduct(dbCtx, tx, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, appErrors.ProductNotFoundError([]int64{item.ProductID})
			}

			return nil, err
		}

		unitPrice := product.Price
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}

		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice * float64(item.Quantity),
			Product:   &models.ProductSummary{ID: product.ID, Name: product.Name, SKU: product.SKU, Price: product.Price},
		}

		err = tx.QueryRowContext(dbCtx, itemQuery, orderItem.OrderID, orderItem.ProductID,
			orderItem.Quantity, orderItem.UnitPrice, orderItem.Subtotal).
			Scan(&orderItem.ID, &orderItem.CreatedAt, &orderItem.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("inserting order item for product %d: %w", item.ProductID, err)
		}

		if _, err := adjustInventory(dbCtx, tx, item.ProductID, -item.Quantity); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, appErrors.ProductNotFoundError([]int64{item.ProductID})
			}

			return nil, err
		}

		order.Items = append(order.Items, orderItem)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying order %d: %w", id, err)
	}

	return order, nil
}

// GetOrderWithItems returns the order with its items eagerly joined to the
// product summary; no lazy loading, nothing to re-attach before
// serialization.
func (r *orderRepository) GetOrderWithItems(ctx context.Context, id int64) (*models.Order, error) {
	order, err := r.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT i.id, i.product_id, i.quantity, i.unit_price, i.subtotal,
			i.created_at, i.updated_at, p.id, p.name, p.sku, p.price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying items for order %d: %w", id, err)
	}

	defer rows.Close()

	for rows.Next() {
		item := models.OrderItem{OrderID: id}
		summary := models.ProductSummary{}

		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&item.Subtotal, &item.CreatedAt, &item.UpdatedAt,
			&summary.ID, &summary.Name, &summary.SKU, &summary.Price)
		if err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		item.Product = &summary
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `UPDATE orders
			  SET status = $1, customer_name = $2, customer_email = $3, customer_phone = $4,
			      shipping_address = $5, billing_address = $6, payment_method = $7,
			      payment_id = $8, notes = $9, updated_at = NOW()
			  WHERE id = $10
			  RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, order.Status, order.CustomerName,
		order.CustomerEmail, order.CustomerPhone, order.ShippingAddress,
		order.BillingAddress, order.PaymentMethod, order.PaymentID, order.Notes,
		order.ID).Scan(&order.UpdatedAt)
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating status for order %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status for order %d: %w", id, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteOrder removes the order; its items go with it via the cascade.
func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting order %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting order %d: %w", id, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListOrders applies the status/customer_email filters.
// Sort parameters are carried in q but, as with products, not applied yet.
func (r *orderRepository) ListOrders(ctx context.Context, q models.ListOrdersQuery) ([]*models.Order, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders`

	var (
		conditions []string
		args       []any
	)

	if q.Status != nil {
		args = append(args, *q.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if q.CustomerEmail != nil {
		args = append(args, *q.CustomerEmail)
		conditions = append(conditions, fmt.Sprintf("customer_email = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, q.Limit, q.Skip)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	defer rows.Close()

	var orders []*models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// getProduct reads one product through the given querier (pool or open
// transaction). No row lock is taken; concurrent order creation races the
// validation read, and the clamped decrement is the only backstop.
func getProduct(ctx context.Context, q Querier, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying product %d: %w", id, err)
	}

	return product, nil
}
