package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`[a-zA-Z0-9_-]+`)

// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv4,
// stores the id in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	ok, err := inputcheck.CheckNumber(id, inputcheck.AnyLength, inputcheck.NotANumber)
	if err != nil || !ok.IsValid() || len(id) > maxIDLength {
		return false
	}
	return inputcheck.Match(id, validID)
}
