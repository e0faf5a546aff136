package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopcore/products-orders-api/internal/models"
)

// ErrDuplicateSKU is returned when an insert or update trips the unique
// constraint on products.sku.
var ErrDuplicateSKU = errors.New("duplicate sku")

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, error)
	AdjustInventory(ctx context.Context, id int64, delta int) (*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, sku, name, description, price, inventory_count,
	category, image_url, weight, dimensions, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.SKU, &product.Name, &product.Description,
		&product.Price, &product.InventoryCount, &product.Category, &product.ImageURL,
		&product.Weight, &product.Dimensions, &product.IsActive,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (sku, name, description, price, inventory_count, category, image_url, weight, dimensions, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.SKU, product.Name, product.Description,
		product.Price, product.InventoryCount, product.Category, product.ImageURL,
		product.Weight, product.Dimensions, product.IsActive).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return translateSKUConflict(err)
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying product %d: %w", id, err)
	}

	return product, nil
}

func (r *productRepository) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, sku))
	if err != nil {
		return nil, fmt.Errorf("querying product by sku %s: %w", sku, err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `UPDATE products
			  SET sku = $1, name = $2, description = $3, price = $4, inventory_count = $5,
			      category = $6, image_url = $7, weight = $8, dimensions = $9, is_active = $10,
			      updated_at = NOW()
			  WHERE id = $11
			  RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.SKU, product.Name, product.Description,
		product.Price, product.InventoryCount, product.Category, product.ImageURL,
		product.Weight, product.Dimensions, product.IsActive, product.ID).
		Scan(&product.UpdatedAt)
	if err != nil {
		return translateSKUConflict(err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListProducts applies the category/is_active filters and the ILIKE
// substring search over name and description.
// TODO: apply q.SortBy/q.SortDesc to the query; they are accepted at the API
// surface but currently ignored, so results come back in id order.
func (r *productRepository) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products`

	var (
		conditions []string
		args       []any
	)

	if q.Category != nil {
		args = append(args, *q.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if q.IsActive != nil {
		args = append(args, *q.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
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
		return nil, fmt.Errorf("listing products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// AdjustInventory is the standalone ledger entry point used outside the
// order workflow (restocking); the workflow uses adjustInventory against its
// transaction.
func (r *productRepository) AdjustInventory(ctx context.Context, id int64, delta int) (*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return adjustInventory(dbCtx, r.DB, id, delta)
}

// adjustInventory applies a signed delta to a product's inventory_count,
// clamping at zero, and returns the updated row. ErrNotFound means the
// product vanished between validation and adjustment; callers inside a
// transaction must treat that as a rollback trigger.
func adjustInventory(ctx context.Context, q Querier, id int64, delta int) (*models.Product, error) {
	query := `UPDATE products
			  SET inventory_count = GREATEST(0, inventory_count + $1), updated_at = NOW()
			  WHERE id = $2
			  RETURNING ` + productColumns

	product, err := scanProduct(q.QueryRowContext(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("adjusting inventory for product %d: %w", id, err)
	}

	return product, nil
}

func translateSKUConflict(err error) error {
	var pqErr *pq.Error

	// 23505 = unique_violation
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateSKU
	}

	return err
}
