// Package environment carries the deployment environment (development,
// staging or production) through configuration, contexts and logs.
//
// Environment implements encoding.TextUnmarshaler, so a config struct can
// declare
//
//	Env environment.Environment `env:"INPUTCHECK_ENV" envDefault:"development"`
//
// and reject unknown names at load time. Middleware attaches the value to
// every request context:
//
//	r.Use(environment.Middleware(cfg.Env))
//
// Loggers get the environment as a static attribute from
// logger.WithEnvironment.
//
// FromContext returns the empty Environment when none is set.
package environment
