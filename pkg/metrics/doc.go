// Package metrics defines the Prometheus collectors of the HTTP service:
// checks by kind and result, request latency and rate-limit rejections.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	m.ObserveCheck("casing", "invalid")
//	http.Handle("/metrics", metrics.Handler(reg))
package metrics
