package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inputcheck/pkg/clientip"
	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/httpserver"
	"github.com/dmitrymomot/inputcheck/pkg/i18n"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/metrics"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/inputcheck/pkg/requestid"
)

// Option configures the router.
type Option func(*API)

// WithTranslator localizes invalid-input messages. Without a translator the
// built-in English messages are returned.
func WithTranslator(tr *i18n.Translator) Option {
	return func(a *API) {
		a.tr = tr
	}
}

// WithLogger sets the logger used for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithEnvironment stores env in every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(a *API) {
		a.env = env
	}
}

// WithMaxBodySize limits request bodies. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

// WithReadinessChecks adds checks served by GET /ready.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(a *API) {
		a.checks = append(a.checks, checks...)
	}
}

// WithMetrics records request latencies and check outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

// WithRateLimiter limits /v1 requests per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}

// WithTrustProxy makes the client IP come from proxy headers such as
// X-Forwarded-For. Enable it only behind a proxy that overwrites them.
func WithTrustProxy(trust bool) Option {
	return func(a *API) {
		a.trustProxy = trust
	}
}

// API serves the validation endpoints.
type API struct {
	tr          *i18n.Translator
	log         *slog.Logger
	env         environment.Environment
	maxBodySize int64
	checks      []func(context.Context) error
	metrics     *metrics.Metrics
	limiter     ratelimiter.RateLimiter
	trustProxy  bool
}

// NewRouter builds the HTTP handler:
//
//	GET  /health        liveness
//	GET  /ready         readiness
//	GET  /v1/patterns   built-in pattern table
//	POST /v1/classify   content classification
//	POST /v1/number     digit strings of a base and length
//	POST /v1/casing     alphabet and casing
//	POST /v1/range      numeric ranges
//	POST /v1/match      named pattern or custom regex
//	POST /v1/validate   a set of fields at once
//
// With a rate limiter every /v1 request takes a token from the bucket of its
// client IP; exhausted clients get 429 with a Retry-After header.
func NewRouter(opts ...Option) http.Handler {
	a := &API{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		env:         environment.Development,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(a)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.CleanPath,
		requestid.Middleware,
		clientip.Middleware(a.trustProxy),
		environment.Middleware(a.env),
		a.requestLogger,
		middleware.Recoverer,
		middleware.RequestSize(a.maxBodySize),
	)
	if a.tr != nil {
		r.Use(i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(a.tr.SupportedLanguages()...)),
			a.tr.DefaultLanguage(),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrMethodNotAllowed).Render(w, r)
	})

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.Get("/ready", httpserver.HealthCheckHandler(a.log, append([]func(context.Context) error{nopCheck}, a.checks...)...))

	bind := WithBinders(BindJSON(a.maxBodySize))
	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, ratelimiter.ByClientIP(),
				ratelimiter.WithLimitedHandler(a.rateLimited),
				ratelimiter.WithStoreErrorHandler(a.rateLimitFailed),
			))
		}
		r.Get("/patterns", a.patterns)
		r.Post("/classify", Wrap(a.classify, bind))
		r.Post("/number", Wrap(a.number, bind))
		r.Post("/casing", Wrap(a.casing, bind))
		r.Post("/range", Wrap(a.numericRange, bind))
		r.Post("/match", Wrap(a.match, bind))
		r.Post("/validate", Wrap(a.validate, bind))
	})
	return r
}

func (a *API) rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	a.metrics.IncRateLimited()
	_ = JSONError(ErrTooManyRequests).Render(w, r)
}

// rateLimitFailed rejects requests whose limit could not be checked.
func (a *API) rateLimitFailed(w http.ResponseWriter, r *http.Request, err error) {
	a.log.ErrorContext(r.Context(), "rate limit check failed", logger.Error(err))
	_ = JSONError(ErrServiceUnavailable).Render(w, r)
}

// nopCheck makes /ready answer READY rather than ALIVE when no checks are configured.
func nopCheck(context.Context) error { return nil }

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		a.metrics.ObserveRequest(route, r.Method, ww.Status(), elapsed)

		level := slog.LevelInfo
		if ww.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		a.log.Log(r.Context(), level, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(elapsed),
		)
	})
}
