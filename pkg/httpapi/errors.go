package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// HTTPError carries a status code and a machine-readable key.
// The key doubles as the "code" of the JSON error body.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable    = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// Binding failures.
var (
	ErrMissingContentType = errors.New("missing content type")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON request body")
	ErrNilResponse        = errors.New("handler returned nil response")
)

// contractErrors maps core contract violations to error codes. They are all
// reported as 422 since the request was well-formed but unusable.
var contractErrors = []struct {
	err  error
	code string
}{
	{inputcheck.ErrEmptyInput, "empty_input"},
	{inputcheck.ErrUnsupportedType, "unsupported_type"},
	{inputcheck.ErrUnknownCasingMode, "unknown_casing_mode"},
	{inputcheck.ErrUnknownBase, "unknown_base"},
	{inputcheck.ErrUnknownPattern, "unknown_pattern"},
	{inputcheck.ErrInvalidPattern, "invalid_pattern"},
}

// statusOf resolves the response status and error code for err.
func statusOf(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	for _, c := range contractErrors {
		if errors.Is(err, c.err) {
			return http.StatusUnprocessableEntity, c.code
		}
	}
	switch {
	case errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType, ErrUnsupportedMediaType.Key
	case errors.Is(err, ErrFailedToParseJSON):
		return http.StatusBadRequest, ErrBadRequest.Key
	}
	return http.StatusInternalServerError, ErrInternalServerError.Key
}
