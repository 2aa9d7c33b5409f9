// internal/adapters/redis/blacklist.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "revoked_token:"

// Blacklist keeps revoked token ids until the token would have expired.
type Blacklist struct {
	client *redis.Client
}

func NewBlacklist(addr, username, password string, db int) *Blacklist {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Blacklist{client: client}
}

func NewBlacklistFromClient(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

func (b *Blacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := b.client.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *Blacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

func (b *Blacklist) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Blacklist) Close() error {
	return b.client.Close()
}
