package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopcore/products-orders-api/internal/api/handlers"
	"github.com/shopcore/products-orders-api/internal/config"
	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
	"github.com/shopcore/products-orders-api/internal/services/mocks"
	"github.com/shopcore/products-orders-api/internal/testutils"
	"github.com/shopcore/products-orders-api/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPagination = config.Pagination{DefaultPageSize: 10, MaxPageSize: 100}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	return envelope.Error
}

func TestCreateProductHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService, testPagination)

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		reqBody := models.CreateProductRequest{
			SKU:            "TEST-SKU-001",
			Name:           "Test Product",
			Price:          99.99,
			InventoryCount: 10,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		expectedProduct := &models.Product{
			ID:             1,
			SKU:            reqBody.SKU,
			Name:           reqBody.Name,
			Price:          reqBody.Price,
			InventoryCount: reqBody.InventoryCount,
			IsActive:       true,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(r *models.CreateProductRequest) bool {
			return r.SKU == reqBody.SKU && r.Name == reqBody.Name
		})).Return(expectedProduct, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(reqBodyBytes), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Product
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, expectedProduct.ID, got.ID)
		assert.Equal(t, expectedProduct.SKU, got.SKU)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, testPagination)

		reqBodyBytes, _ := json.Marshal(map[string]any{"name": "No SKU"})

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(reqBodyBytes), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, appErrors.ErrTypeValidation, body.ErrorType)
		assert.NotEmpty(t, body.ValidationErrors, "field errors should be reported")
		mockProductService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte("{not json")), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, appErrors.ErrCodeBadRequest, body.Code)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		// Arrange
		reqBody := models.CreateProductRequest{SKU: "DUP-SKU", Name: "Dup", Price: 1}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockProductService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateSKUError("DUP-SKU")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(reqBodyBytes), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, appErrors.ErrTypeDuplicateSKU, body.ErrorType)
		mockProductService.AssertExpectations(t)
	})
}

func TestGetProductHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService, testPagination)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		expected := &models.Product{ID: 7, SKU: "SKU7", Name: "Found"}

		mockProductService.On("GetProductByID", mock.Anything, int64(7)).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/7", nil, map[string]string{"id": "7"})

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, expected.SKU, got.SKU)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, appErrors.ProductNotFoundError([]int64{404})).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/404", nil, map[string]string{"id": "404"})

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, appErrors.ErrTypeProductNotFound, body.ErrorType)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, testPagination)

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/abc", nil, map[string]string{"id": "abc"})

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})
}

func TestListProductsHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService, testPagination)

	t.Run("Success - Summaries Returned", func(t *testing.T) {
		// Arrange
		products := []*models.Product{
			{ID: 1, SKU: "SKU1", Name: "First", Price: 10},
			{ID: 2, SKU: "SKU2", Name: "Second", Price: 20},
		}

		mockProductService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q models.ListProductsQuery) bool {
			return q.Skip == 0 && q.Limit == 10
		})).Return(products, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products", nil, nil)

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got []models.ProductSummary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "SKU1", got[0].SKU)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Pagination Clamped", func(t *testing.T) {
		// Arrange
		mockProductService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q models.ListProductsQuery) bool {
			return q.Skip == 5 && q.Limit == 100
		})).Return([]*models.Product{}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?skip=5&limit=500", nil, nil)

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestSearchProductsHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService, testPagination)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q models.ListProductsQuery) bool {
			return q.Search == "gear"
		})).Return([]*models.Product{}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/search?query=gear", nil, nil)

		// Act
		productHandler.SearchProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Query", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService, testPagination)

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/search", nil, nil)

		// Act
		productHandler.SearchProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService, testPagination)

	t.Run("Success - No Content", func(t *testing.T) {
		// Arrange
		mockProductService.On("DeleteProduct", mock.Anything, int64(7)).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodDelete, "/api/v1/products/7", nil, map[string]string{"id": "7"})

		// Act
		productHandler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
		mockProductService.AssertExpectations(t)
	})
}
