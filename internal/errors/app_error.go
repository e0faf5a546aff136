package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is the error value every layer returns instead of raising and
// re-catching across call boundaries. The API layer maps it onto the wire
// envelope; Code is the coarse class, ErrorType the machine-readable tag
// callers branch on.
type AppError struct {
	Code       string
	ErrorType  string
	Message    string
	StatusCode int
	Records    []ValidationRecord
	Err        error
}

// ValidationRecord is one structured entry inside a validation failure:
// either an inventory shortfall for a product or a field-level input error.
type ValidationRecord struct {
	ProductID int64  `json:"product_id,omitempty"`
	Requested int    `json:"requested,omitempty"`
	Available int    `json:"available,omitempty"`
	Field     string `json:"field,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func (e *AppError) WithRecords(records ...ValidationRecord) *AppError {
	e.Records = append(e.Records, records...)

	return e
}

const (
	ErrCodeValidation = "validation_error"
	ErrCodeBadRequest = "bad_request"
	ErrCodeNotFound   = "not_found"
	ErrCodeConflict   = "conflict"
	ErrCodeInternal   = "internal_error"
	ErrCodeDatabase   = "database_error"
)

// error_type tags. These are part of the API contract: clients distinguish
// "not found" from "insufficient inventory" from "invalid transition" by tag,
// not by parsing messages.
const (
	ErrTypeProductNotFound         = "product_not_found"
	ErrTypeOrderNotFound           = "order_not_found"
	ErrTypeDuplicateSKU            = "duplicate_sku"
	ErrTypeEmptyOrder              = "empty_order"
	ErrTypeInsufficientInventory   = "insufficient_inventory"
	ErrTypeInvalidStatusTransition = "invalid_status_transition"
	ErrTypeInvalidOrderDeletion    = "invalid_order_deletion"
	ErrTypeNotFound                = "not_found"
	ErrTypeValidation              = "validation_error"
	ErrTypeBadRequest              = "bad_request"
	ErrTypeDatabase                = "database_error"
	ErrTypeInternal                = "internal_error"
)

func NewAppError(code, errorType, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		ErrorType:  errorType,
		Message:    message,
		StatusCode: statusCode,
	}
}

func ProductNotFoundError(ids []int64) *AppError {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	err := NewAppError(ErrCodeNotFound, ErrTypeProductNotFound,
		fmt.Sprintf("Products not found: %s", strings.Join(parts, ", ")), http.StatusNotFound)
	for _, id := range ids {
		err.Records = append(err.Records, ValidationRecord{ProductID: id, Reason: "product not found"})
	}

	return err
}

func OrderNotFoundError(id int64) *AppError {
	return NewAppError(ErrCodeNotFound, ErrTypeOrderNotFound,
		fmt.Sprintf("Order with ID %d not found", id), http.StatusNotFound)
}

// DuplicateSKUError reports a SKU conflict. The API returns 400 here, not
// 409, matching the original contract for product create/update.
func DuplicateSKUError(sku string) *AppError {
	return NewAppError(ErrCodeConflict, ErrTypeDuplicateSKU,
		fmt.Sprintf("Product with SKU %s already exists", sku), http.StatusBadRequest)
}

// DuplicateOrderLineError reports items that name the same product more than
// once. Quantities are not merged; the client resubmits a single line.
func DuplicateOrderLineError(ids []int64) *AppError {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	err := NewAppError(ErrCodeValidation, ErrTypeValidation,
		fmt.Sprintf("Duplicate products in order: %s", strings.Join(parts, ", ")),
		http.StatusUnprocessableEntity)
	for _, id := range ids {
		err.Records = append(err.Records, ValidationRecord{ProductID: id, Reason: "listed more than once"})
	}

	return err
}

func EmptyOrderError() *AppError {
	return NewAppError(ErrCodeValidation, ErrTypeEmptyOrder,
		"Order must contain at least one item", http.StatusUnprocessableEntity)
}

func InsufficientInventoryError(records []ValidationRecord) *AppError {
	err := NewAppError(ErrCodeValidation, ErrTypeInsufficientInventory,
		"Insufficient inventory for one or more products", http.StatusUnprocessableEntity)
	err.Records = records

	return err
}

func InvalidStatusTransitionError(from, to string) *AppError {
	return NewAppError(ErrCodeValidation, ErrTypeInvalidStatusTransition,
		fmt.Sprintf("Invalid status transition from %s to %s", from, to), http.StatusUnprocessableEntity)
}

func InvalidOrderDeletionError(status string) *AppError {
	return NewAppError(ErrCodeValidation, ErrTypeInvalidOrderDeletion,
		fmt.Sprintf("Orders with status %s cannot be deleted", status), http.StatusUnprocessableEntity)
}

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, ErrTypeValidation, message, http.StatusUnprocessableEntity)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, ErrTypeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, ErrTypeNotFound, message, http.StatusNotFound)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabase, ErrTypeDatabase, message, http.StatusInternalServerError)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, ErrTypeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
