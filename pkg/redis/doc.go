// Package redis connects to the optional Redis server that backs shared
// rate limit buckets.
//
// Connect retries the initial ping according to Config, and Healthcheck
// plugs the connection into the /ready endpoint:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//		store := ratelimiter.NewRedisStore(client)
//		check := redis.Healthcheck(client)
//	}
//
// Errors wrap the go-redis cause with errors.Join, so both the sentinel and
// the original error match errors.Is.
package redis
