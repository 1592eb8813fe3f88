package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/inputcheck/internal/locales"
	"github.com/dmitrymomot/inputcheck/pkg/httpapi"
	"github.com/dmitrymomot/inputcheck/pkg/httpserver"
	"github.com/dmitrymomot/inputcheck/pkg/i18n"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/metrics"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/inputcheck/pkg/redis"
)

type check = func(context.Context) error

// run serves the API and the admin endpoints until ctx is done or one of the
// servers fails.
func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.Locale),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	checks := []check{translationsLoaded(tr)}
	opts := []httpapi.Option{
		httpapi.WithTranslator(tr),
		httpapi.WithLogger(log),
		httpapi.WithEnvironment(cfg.Env),
		httpapi.WithMaxBodySize(cfg.MaxBodySize),
		httpapi.WithTrustProxy(cfg.TrustProxy),
		httpapi.WithMetrics(m),
	}

	if cfg.RateLimitEnabled {
		limiter, limiterChecks, closeLimiter, err := newLimiter(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeLimiter()
		checks = append(checks, limiterChecks...)
		opts = append(opts, httpapi.WithRateLimiter(limiter))
	}
	opts = append(opts, httpapi.WithReadinessChecks(checks...))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("api"))))
		return srv.Run(ctx, httpapi.NewRouter(opts...))
	})
	if cfg.AdminAddr != "" {
		eg.Go(func() error {
			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithAddr(cfg.AdminAddr),
				httpserver.WithLogger(log.With(logger.Component("admin"))),
			)
			return srv.Run(ctx, adminRouter(reg, log, checks...))
		})
	}
	return eg.Wait()
}

// newLimiter builds the rate limiter: a Redis store when a URL is configured,
// process memory otherwise.
func newLimiter(ctx context.Context, cfg Config, log *slog.Logger) (ratelimiter.RateLimiter, []check, func(), error) {
	if !cfg.Redis.Enabled() {
		store := ratelimiter.NewMemoryStore()
		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		log.InfoContext(ctx, "rate limiting with in-memory store")
		return limiter, nil, store.Close, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.WarnContext(ctx, "failed to close redis client", logger.Error(err))
		}
	}
	limiter, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), cfg.RateLimit)
	if err != nil {
		closeClient()
		return nil, nil, nil, err
	}
	log.InfoContext(ctx, "rate limiting with redis store")
	return limiter, []check{redis.Healthcheck(client)}, closeClient, nil
}

// adminRouter serves Prometheus metrics and health checks on a separate listener.
func adminRouter(g prometheus.Gatherer, log *slog.Logger, checks ...check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", metrics.Handler(g))
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, checks...))
	return r
}

func translationsLoaded(tr *i18n.Translator) check {
	return func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return errors.New("no translations loaded")
		}
		return nil
	}
}
