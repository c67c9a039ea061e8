// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
)

// notReadyMessage is returned while the pattern library is still loading.
const notReadyMessage = "Models are still initializing. Please try again in a moment."

// ErrBadRequest indicates a request that could not be read or decoded
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest  *ErrBadRequest
		schemaErr   *schemas.ValidationError
		fieldErrs   validator.ValidationErrors
		ingestError *ingestion.Error
	)

	switch {
	case errors.As(err, &badRequest), errors.As(err, &schemaErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.Is(err, screening.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, ingestion.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &ingestError):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage renders the client-facing message for a failed operation.
// Client errors carry their own message; server errors are prefixed with the operation.
func errorMessage(operation string, err error) string {
	switch status := HTTPStatus(err); {
	case status == http.StatusServiceUnavailable:
		return notReadyMessage
	case status >= http.StatusInternalServerError:
		return fmt.Sprintf("%s failed: %v", operation, err)
	default:
		return err.Error()
	}
}
