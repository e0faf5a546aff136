package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopcore/products-orders-api/internal/api/middleware"
	"github.com/shopcore/products-orders-api/internal/errors"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Code             string                    `json:"code"`
	Message          string                    `json:"message"`
	CorrelationID    string                    `json:"correlation_id,omitempty"`
	ErrorType        string                    `json:"error_type,omitempty"`
	ValidationErrors []errors.ValidationRecord `json:"validation_errors,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

// Success writes the payload as-is. List endpoints pass slices, detail
// endpoints pass the resource; there is no envelope on the happy path.
func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, data)
}

// Error maps an error value onto the envelope. AppErrors keep their status,
// code and records; anything else is surfaced as an opaque internal error so
// storage details never leak to the caller.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())

	var statusCode int

	var body ErrorBody

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		body = ErrorBody{
			Code:             appErr.Code,
			Message:          appErr.Message,
			CorrelationID:    correlationID,
			ErrorType:        appErr.ErrorType,
			ValidationErrors: appErr.Records,
		}
	} else {
		statusCode = http.StatusInternalServerError
		body = ErrorBody{
			Code:          errors.ErrCodeInternal,
			Message:       "An unexpected error occurred",
			CorrelationID: correlationID,
			ErrorType:     errors.ErrTypeInternal,
		}
	}

	WriteJSON(w, statusCode, ErrorResponse{Error: body})
}

// ValidationError renders go-playground field errors as one 422 response
// with a record per offending field.
func ValidationError(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors) {
	records := make([]errors.ValidationRecord, 0, len(errs))

	for _, err := range errs {
		var reason string

		switch err.Tag() {
		case "required":
			reason = "field is required"
		case "email":
			reason = "must be a valid email address"
		case "gt":
			reason = fmt.Sprintf("must be greater than %s", err.Param())
		case "gte":
			reason = fmt.Sprintf("must be at least %s", err.Param())
		case "max":
			reason = fmt.Sprintf("must be at most %s characters", err.Param())
		case "min":
			reason = fmt.Sprintf("must be at least %s characters", err.Param())
		default:
			reason = fmt.Sprintf("failed on %s=%s", err.Tag(), err.Param())
		}

		records = append(records, errors.ValidationRecord{Field: err.Field(), Reason: reason})
	}

	appErr := errors.ValidationError("Validation error").WithRecords(records...)
	Error(w, r, appErr)
}
