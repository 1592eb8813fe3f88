// Command inputcheckd serves the input checks over HTTP.
//
// Configuration comes from the environment (and a .env file):
//
//	INPUTCHECK_ENV                         development, staging or production
//	INPUTCHECK_LOCALE                      default message language (en)
//	INPUTCHECK_LOG_LEVEL                   overrides the environment's log level
//	INPUTCHECK_HTTP_ADDR                   API listen address (:8080)
//	INPUTCHECK_HTTP_READ_TIMEOUT           10s
//	INPUTCHECK_HTTP_WRITE_TIMEOUT          10s
//	INPUTCHECK_HTTP_IDLE_TIMEOUT           120s
//	INPUTCHECK_HTTP_SHUTDOWN_TIMEOUT       5s
//	INPUTCHECK_HTTP_MAX_BODY_SIZE          request body limit in bytes (1MB)
//	INPUTCHECK_HTTP_TRUST_PROXY            take client IPs from proxy headers (false)
//	INPUTCHECK_ADMIN_ADDR                  metrics and health checks listen address (:9090), empty disables
//	INPUTCHECK_RATE_LIMIT_ENABLED          per-IP limits on /v1 (true)
//	INPUTCHECK_RATE_LIMIT_CAPACITY         burst size (60)
//	INPUTCHECK_RATE_LIMIT_REFILL_RATE      tokens per interval (1)
//	INPUTCHECK_RATE_LIMIT_REFILL_INTERVAL  1s
//	INPUTCHECK_REDIS_URL                   share rate limits through Redis when set
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/inputcheck/pkg/config"
	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/httpserver"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/inputcheck/pkg/redis"
	"github.com/dmitrymomot/inputcheck/pkg/requestid"
)

// Config is the service configuration.
type Config struct {
	Env              environment.Environment `env:"INPUTCHECK_ENV" envDefault:"development"`
	Locale           string                  `env:"INPUTCHECK_LOCALE" envDefault:"en"`
	LogLevel         string                  `env:"INPUTCHECK_LOG_LEVEL"`
	MaxBodySize      int64                   `env:"INPUTCHECK_HTTP_MAX_BODY_SIZE" envDefault:"1048576"`
	TrustProxy       bool                    `env:"INPUTCHECK_HTTP_TRUST_PROXY" envDefault:"false"`
	AdminAddr        string                  `env:"INPUTCHECK_ADMIN_ADDR" envDefault:":9090"`
	RateLimitEnabled bool                    `env:"INPUTCHECK_RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit        ratelimiter.Config
	HTTP             httpserver.Config
	Redis            redis.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "inputcheckd"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "inputcheckd stopped", logger.Error(err))
		os.Exit(1)
	}
}
