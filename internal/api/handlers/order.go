package handlers

import (
	"fmt"
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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
	pagination   config.Pagination
}

func NewOrderHandler(orderService service.OrderService, pagination config.Pagination) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
		pagination:   pagination,
	}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create order", slog.String("customerEmail", req.CustomerEmail), slog.String("error", err.Error()))
			response.Error(w, r, err)

			return
		}

		logger.Info("Order created",
			slog.Int64("orderID", order.ID),
			slog.Int("items", len(order.Items)),
			slog.Float64("totalAmount", order.TotalAmount))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		var req models.UpdateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrder(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update order", slog.Int64("orderID", id), slog.String("error", err.Error()))
			response.Error(w, r, err)

			return
		}

		logger.Info("Order updated", slog.Int64("orderID", order.ID))
		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status",
				slog.Int64("orderID", id),
				slog.String("status", string(req.Status)),
				slog.String("error", err.Error()))
			response.Error(w, r, err)

			return
		}

		logger.Info("Order status updated", slog.Int64("orderID", order.ID), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, r, err)

			return
		}

		if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
			response.Error(w, r, err)

			return
		}

		logger.Info("Order deleted", slog.Int64("orderID", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListOrders serves GET /orders with optional status filtering. Sort
// parameters ride along unused, mirroring the product listing.
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.listQueryFrom(r)

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := models.OrderStatus(raw)
			if !status.Valid() {
				response.Error(w, r, appErrors.ValidationError(fmt.Sprintf("Invalid order status: %s", raw)))

				return
			}

			q.Status = &status
		}

		h.serveList(w, r, q)
	}
}

// OrdersByCustomer serves GET /orders/customer/{email}.
func (h *OrderHandler) OrdersByCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.listQueryFrom(r)

		email := r.PathValue("email")
		q.CustomerEmail = &email

		h.serveList(w, r, q)
	}
}

func (h *OrderHandler) listQueryFrom(r *http.Request) models.ListOrdersQuery {
	skip, limit := utils.ParsePagination(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)

	sortDesc, _ := strconv.ParseBool(r.URL.Query().Get("sort_desc"))

	return models.ListOrdersQuery{
		Skip:     skip,
		Limit:    limit,
		SortBy:   r.URL.Query().Get("sort_by"),
		SortDesc: sortDesc,
	}
}

func (h *OrderHandler) serveList(w http.ResponseWriter, r *http.Request, q models.ListOrdersQuery) {
	orders, err := h.orderService.ListOrders(r.Context(), q)
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.String("error", err.Error()))
		response.Error(w, r, err)

		return
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, o.Summary())
	}

	response.Success(w, http.StatusOK, summaries)
}
