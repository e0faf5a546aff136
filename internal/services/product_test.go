package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "github.com/shopcore/products-orders-api/internal/cache/mocks"
	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
	repository "github.com/shopcore/products-orders-api/internal/repositories"
	"github.com/shopcore/products-orders-api/internal/repositories/mocks"
	service "github.com/shopcore/products-orders-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductService(t *testing.T) (service.ProductService, *mocks.ProductRepository, *cacheMocks.Cache) {
	t.Helper()

	mockRepo := new(mocks.ProductRepository)
	mockCache := new(cacheMocks.Cache)

	return service.NewProductService(mockRepo, mockCache), mockRepo, mockCache
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	req := &models.CreateProductRequest{
		SKU:            "TEST-SKU-001",
		Name:           "Test Product",
		Price:          99.99,
		InventoryCount: 10,
	}

	t.Run("Success - Create Product", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("GetProductBySKU", mock.Anything, req.SKU).
			Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.SKU == req.SKU && p.Name == req.Name && p.IsActive
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, req.SKU, product.SKU)
		assert.Equal(t, req.Price, product.Price)
		assert.Equal(t, req.InventoryCount, product.InventoryCount)
		assert.True(t, product.IsActive, "products default to active")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Description Sanitized", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		description := `<script>alert("x")</script>plain text`
		dirtyReq := &models.CreateProductRequest{
			SKU:         "TEST-SKU-002",
			Name:        "Test Product",
			Price:       1.00,
			Description: &description,
		}

		mockRepo.On("GetProductBySKU", mock.Anything, dirtyReq.SKU).
			Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Description != nil && *p.Description == "plain text"
		})).Return(nil).Once()

		// Act
		_, err := productService.CreateProduct(ctx, dirtyReq)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate SKU Pre-Check", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("GetProductBySKU", mock.Anything, req.SKU).
			Return(&models.Product{ID: 1, SKU: req.SKU}, nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeDuplicateSKU, appErr.ErrorType)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate SKU Constraint", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("GetProductBySKU", mock.Anything, req.SKU).
			Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(repository.ErrDuplicateSKU).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeDuplicateSKU, appErr.ErrorType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("GetProductBySKU", mock.Anything, req.SKU).
			Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(errors.New("connection refused")).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabase, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newProductService(t)

		expected := &models.Product{ID: 7, SKU: "SKU7", Name: "Cached Product"}

		mockCache.On("Get", mock.Anything, "product:7", mock.Anything).
			Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, int64(7)).
			Return(expected, nil).Once()
		mockCache.On("Set", mock.Anything, "product:7", expected, mock.Anything).
			Return(nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 7)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, product)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Hit", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newProductService(t)

		mockCache.On("Get", mock.Anything, "product:7", mock.Anything).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*models.Product)
				p.ID = 7
				p.SKU = "SKU7"
			}).
			Return(true, nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 7)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(7), product.ID)
		mockRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newProductService(t)

		mockCache.On("Get", mock.Anything, "product:404", mock.Anything).
			Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, repository.ErrNotFound).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 404)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeProductNotFound, appErr.ErrorType)
		assert.Equal(t, 404, appErr.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Partial Update", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newProductService(t)

		existing := &models.Product{ID: 7, SKU: "SKU7", Name: "Old Name", Price: 10.00, IsActive: true}
		newName := "New Name"
		newPrice := 15.00

		mockRepo.On("GetProductByID", mock.Anything, int64(7)).Return(existing, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == newName && p.Price == newPrice && p.SKU == "SKU7"
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "product:7").Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, 7, &models.UpdateProductRequest{
			Name:  &newName,
			Price: &newPrice,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, newName, product.Name)
		assert.Equal(t, newPrice, product.Price)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, repository.ErrNotFound).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, 404, &models.UpdateProductRequest{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeProductNotFound, appErr.ErrorType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - SKU Conflict", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		existing := &models.Product{ID: 7, SKU: "SKU7", Name: "Old Name", IsActive: true}
		takenSKU := "TAKEN"

		mockRepo.On("GetProductByID", mock.Anything, int64(7)).Return(existing, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(repository.ErrDuplicateSKU).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, 7, &models.UpdateProductRequest{SKU: &takenSKU})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeDuplicateSKU, appErr.ErrorType)
		assert.Equal(t, 400, appErr.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newProductService(t)

		mockRepo.On("DeleteProduct", mock.Anything, int64(7)).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "product:7").Return(nil).Once()

		// Act
		err := productService.DeleteProduct(ctx, 7)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("DeleteProduct", mock.Anything, int64(404)).
			Return(repository.ErrNotFound).Once()

		// Act
		err := productService.DeleteProduct(ctx, 404)

		// Assert
		assert.Error(t, err)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrTypeProductNotFound, appErr.ErrorType)
		mockRepo.AssertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		expected := []*models.Product{
			{ID: 1, SKU: "SKU1", Name: "First"},
			{ID: 2, SKU: "SKU2", Name: "Second"},
		}
		q := models.ListProductsQuery{Skip: 0, Limit: 10}

		mockRepo.On("ListProducts", mock.Anything, q).Return(expected, nil).Once()

		// Act
		products, err := productService.ListProducts(ctx, q)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newProductService(t)

		mockRepo.On("ListProducts", mock.Anything, mock.Anything).
			Return(nil, errors.New("query failed")).Once()

		// Act
		products, err := productService.ListProducts(ctx, models.ListProductsQuery{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, products)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabase, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
