package redis

import "time"

// Config describes the optional Redis connection used to share rate limits
// between instances. An empty ConnectionURL disables Redis.
type Config struct {
	ConnectionURL  string        `env:"INPUTCHECK_REDIS_URL"`                              // e.g. "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"INPUTCHECK_REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // connection attempts before giving up
	RetryInterval  time.Duration `env:"INPUTCHECK_REDIS_RETRY_INTERVAL" envDefault:"2s"`   // pause between attempts
	ConnectTimeout time.Duration `env:"INPUTCHECK_REDIS_CONNECT_TIMEOUT" envDefault:"15s"` // overall budget for Connect
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
