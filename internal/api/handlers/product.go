package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopcore/products-orders-api/internal/api/middleware"
	"github.com/shopcore/products-orders-api/internal/config"
	appErrors "github.com/shopcore/products-orders-api/internal/errors"
	"github.com/shopcore/products-orders-api/internal/models"
	service "github.com/shopcore/products-orders-api/internal/services"
	"github.com/shopcore/products-orders-api/internal/utils"
	"github.com/shopcore/products-orders-api/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
	pagination     config.Pagination
}

func NewProductHandler(productService service.ProductService, pagination config.Pagination) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		pagination:     pagination,
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("sku", req.SKU), slog.String("error", err.Error()))
			response.Error(w, r, err)

			return
		}

		logger.Info("Product created", slog.Int64("productID", product.ID), slog.String("sku", product.SKU))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productID", id), slog.String("error", err.Error()))
			response.Error(w, r, err)

			return
		}

		logger.Info("Product updated", slog.Int64("productID", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, r, err)

			return
		}

		logger.Info("Product deleted", slog.Int64("productID", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListProducts serves GET /products. sort_by/sort_desc are parsed and carried
// on the query but not yet honored by the repository.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.listQueryFrom(r)

		if raw := r.URL.Query().Get("is_active"); raw != "" {
			if isActive, err := strconv.ParseBool(raw); err == nil {
				q.IsActive = &isActive
			}
		}

		h.serveList(w, r, q)
	}
}

// SearchProducts serves GET /products/search?query=...
func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.listQueryFrom(r)

		q.Search = r.URL.Query().Get("query")
		if q.Search == "" {
			response.Error(w, r, appErrors.BadRequestError("Search query cannot be empty"))

			return
		}

		h.serveList(w, r, q)
	}
}

// ProductsByCategory serves GET /products/category/{category}.
func (h *ProductHandler) ProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.listQueryFrom(r)

		category := r.PathValue("category")
		q.Category = &category

		h.serveList(w, r, q)
	}
}

func (h *ProductHandler) listQueryFrom(r *http.Request) models.ListProductsQuery {
	skip, limit := utils.ParsePagination(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)

	sortDesc, _ := strconv.ParseBool(r.URL.Query().Get("sort_desc"))

	return models.ListProductsQuery{
		Skip:     skip,
		Limit:    limit,
		SortBy:   r.URL.Query().Get("sort_by"),
		SortDesc: sortDesc,
	}
}

func (h *ProductHandler) serveList(w http.ResponseWriter, r *http.Request, q models.ListProductsQuery) {
	products, err := h.productService.ListProducts(r.Context(), q)
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to list products", slog.String("error", err.Error()))
		response.Error(w, r, err)

		return
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, p.Summary())
	}

	response.Success(w, http.StatusOK, summaries)
}
