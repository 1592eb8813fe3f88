// Package config loads typed configuration from environment variables.
//
// Load parses a struct with github.com/caarlos0/env/v11 tags and caches the
// result per type; the first call also reads a .env file through
// github.com/joho/godotenv. Field types that implement
// encoding.TextUnmarshaler, such as environment.Environment, are decoded and
// validated during parsing.
//
//	type Config struct {
//		Env      environment.Environment `env:"INPUTCHECK_ENV" envDefault:"development"`
//		LogLevel string                  `env:"INPUTCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests that change variables between loads call ResetCache.
package config
