// Package clientip resolves the address of the client behind an HTTP
// request.
//
// RemoteIP reads the TCP peer address. GetIP first looks at the headers set
// by reverse proxies (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) and
// should only be used behind a proxy that overwrites them, since clients can
// send these headers themselves. Middleware stores the resolved address in
// the request context for rate limiting and logging.
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	ip := clientip.GetIPFromContext(r.Context())
package clientip
