package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the
// request context. With trustProxy the proxy headers are honoured (GetIP);
// without it only the connection address is used (RemoteIP).
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	resolve := RemoteIP
	if trustProxy {
		resolve = GetIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
