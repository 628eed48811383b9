package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/service"
)

// APIError is a custom error type that implements huma.StatusError.
// It maps domain errors to HTTP responses with consistent structure.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			if apiErr := fromError(err); apiErr != nil {
				return apiErr
			}
		}

		code := statusToCode(status)
		if details := inputDetails(errs); details != nil {
			return &APIError{
				status:  code.HTTPStatus(),
				Code:    string(code),
				Message: message,
				Details: details,
			}
		}

		return &APIError{
			status:  status,
			Code:    string(code),
			Message: message,
		}
	}
}

// fromError converts the errors services return. It returns nil for anything
// it does not recognize.
func fromError(err error) *APIError {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return &APIError{
			status:  domainErr.HTTPStatus(),
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Details: domainErr.Details,
		}
	}

	var fetchErr *service.CategoryFetchError
	if errors.As(err, &fetchErr) {
		return &APIError{
			status:  domainerrors.CodeUpstream.HTTPStatus(),
			Code:    string(domainerrors.CodeUpstream),
			Message: "failed to fetch category " + fetchErr.Category,
		}
	}

	return nil
}

// inputDetails collects huma's parameter validation failures by location,
// e.g. "query.page".
func inputDetails(errs []error) map[string]string {
	var details map[string]string
	for _, err := range errs {
		var detailer huma.ErrorDetailer
		if !errors.As(err, &detailer) {
			continue
		}
		if details == nil {
			details = make(map[string]string)
		}
		d := detailer.ErrorDetail()
		details[d.Location] = d.Message
	}
	return details
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) domainerrors.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domainerrors.CodeValidation
	case http.StatusNotFound:
		return domainerrors.CodeNotFound
	case http.StatusTooManyRequests:
		return domainerrors.CodeRateLimited
	case http.StatusBadGateway:
		return domainerrors.CodeUpstream
	default:
		return domainerrors.CodeInternal
	}
}
