// Package redis wires the Redis client that backs the issued-token log and
// the readiness probe. Nothing in the request path blocks on it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check so a bad address fails
// fast instead of stalling process start.
const pingTimeout = 3 * time.Second

// Connect opens a client against addr/db and verifies the server answers a
// ping before handing the client to the audit workers.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return client, nil
}
