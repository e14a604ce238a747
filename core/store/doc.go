// Package store provides access to the Redis datastore configured through
// REDIS_HOST, REDIS_PORT and REDIS_PASSWORD.
//
// The Client interface hides the go-redis client so handlers can be tested
// with the mock in core/store/mocks.
//
// # Usage
//
//	client := store.NewClient(cfg.Store)
//	defer client.Close()
//	if err := client.Ping(ctx); err != nil {
//	    log.Warn("Optional store connection failed", zap.Error(err))
//	}
package store
