package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details holds per-field messages
// when a whole set of fields was validated.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v into the data envelope with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
}

// JSONError renders err with the status and code resolved by statusOf.
func JSONError(err error) Response {
	status, code := statusOf(err)
	detail := &ErrorDetail{Code: code, Message: err.Error()}
	if status >= http.StatusInternalServerError {
		detail.Message = http.StatusText(status)
	}
	return jsonResponse{status: status, body: Envelope{Error: detail}}
}

// validationFailed renders collected field failures as a 422 with details.
// messages already holds the localized text of each failure.
func validationFailed(verrs validator.ValidationErrors, messages []string) Response {
	details := make(map[string][]string, len(verrs))
	for i, verr := range verrs {
		details[verr.Field] = append(details[verr.Field], messages[i])
	}
	return jsonResponse{
		status: http.StatusUnprocessableEntity,
		body: Envelope{Error: &ErrorDetail{
			Code:    "validation_failed",
			Message: "one or more fields are invalid",
			Details: details,
		}},
	}
}
