package store_test

import (
	"context"
	"testing"
	"time"

	"webboot/core/store"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	cfg := store.Config{Host: "127.0.0.1", Port: 6379}
	assert.Equal(t, "127.0.0.1:6379", cfg.Addr())

	cfg = store.Config{Host: "::1", Port: 6380}
	assert.Equal(t, "[::1]:6380", cfg.Addr())
}

func TestNewClient(t *testing.T) {
	client := store.NewClient(store.Config{Host: "localhost", Port: 6379, Password: "secret"})
	assert.NotNil(t, client)
	assert.Equal(t, "localhost:6379", client.Addr())
	assert.NoError(t, client.Close())
}

func TestPing(t *testing.T) {
	t.Run("Unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// Port 1 is reserved and nothing listens there.
		client := store.NewClient(store.Config{Host: "127.0.0.1", Port: 1, Timeout: 200 * time.Millisecond})
		defer client.Close()

		err := client.Ping(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
	})
}
