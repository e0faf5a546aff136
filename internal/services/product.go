package service

import (
	"context"
	"errors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopcore/products-orders-api/internal/cache"
	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
	repository "github.com/shopcore/products-orders-api/internal/repositories"
)

// sanitizer strips markup from free-text fields before they are stored.
var sanitizer = bluemonday.StrictPolicy()

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	existing, _ := s.repo.GetProductBySKU(ctx, req.SKU)
	if existing != nil {
		return nil, appErrors.DuplicateSKUError(req.SKU)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		SKU:            req.SKU,
		Name:           req.Name,
		Description:    sanitizeOptional(req.Description),
		Price:          req.Price,
		InventoryCount: req.InventoryCount,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Weight:         req.Weight,
		Dimensions:     req.Dimensions,
		IsActive:       isActive,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		// The pre-check above races concurrent creates; the unique
		// constraint is the authoritative guard.
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, appErrors.DuplicateSKUError(req.SKU)
		}

		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	key := cache.Key(cache.ProductKeyPrefix, id)

	var cached models.Product

	hit, err := s.cache.Get(ctx, key, &cached)
	if err == nil && hit {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ProductNotFoundError([]int64{id})
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	// Cache failures are not the caller's problem.
	_ = s.cache.Set(ctx, key, product, 0)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ProductNotFoundError([]int64{id})
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.SKU != nil {
		product.SKU = *req.SKU
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = sanitizeOptional(req.Description)
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.InventoryCount != nil {
		product.InventoryCount = *req.InventoryCount
	}

	if req.Category != nil {
		product.Category = req.Category
	}

	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if req.Weight != nil {
		product.Weight = req.Weight
	}

	if req.Dimensions != nil {
		product.Dimensions = req.Dimensions
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, appErrors.DuplicateSKUError(product.SKU)
		}

		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id))

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.ProductNotFoundError([]int64{id})
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id))

	return nil
}

func (s *productService) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}

	clean := sanitizer.Sanitize(*s)

	return &clean
}
