package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/application/validation"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

// ServiceError is the classification of every unsuccessful outcome a
// service returns. Message and Details are safe to show to callers; Err is
// for operators only.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    validation.Errors
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMissingParameter = "MISSING_PARAMETER"
	ErrCodeInvalidPaymentID = "INVALID_PAYMENT_ID"
	ErrCodePaymentNotFound  = "PAYMENT_NOT_FOUND"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

func NewValidationError(message string, details validation.Errors) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func NewMissingPaymentIDError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeMissingParameter,
		Message:    "Payment ID is required",
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewMalformedPaymentIDError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidPaymentID,
		Message:    "Payment ID must be a valid UUID format",
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewPaymentNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    fmt.Sprintf("Payment with ID '%s' not found", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus returns the status a transport should render for err.
// Anything that is not a ServiceError is an internal failure.
func ToHTTPStatus(err error) int {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
