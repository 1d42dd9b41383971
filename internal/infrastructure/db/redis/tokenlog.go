package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenLog records issued token ids for replay-log correlation.
// Key format: token:<jti> -> "<username>:<role>", expiring with the token.
//
// The log is write-only from the service's perspective: token validation
// never consults it, so it is an audit trail, not a revocation list.
type TokenLog struct {
	client *redis.Client
}

// NewTokenLog creates a TokenLog wrapping the given Redis client.
func NewTokenLog(client *redis.Client) *TokenLog {
	return &TokenLog{client: client}
}

// Record stores the issued token id. The entry expires when the token does;
// entries for already-expired tokens are dropped.
func (l *TokenLog) Record(ctx context.Context, tokenID, username, role string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, l.key(tokenID), username+":"+role, ttl).Err()
}

func (l *TokenLog) key(tokenID string) string {
	return fmt.Sprintf("token:%s", tokenID)
}
