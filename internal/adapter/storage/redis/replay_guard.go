package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pushpay/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayGuard implements ports.ReplayGuard using Redis SET NX, so each
// handshake verification hash is accepted once per merchant within the TTL.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: keyPrefix + "handshake:",
	}
}

func (g *ReplayGuard) key(merchantID domain.MerchantID, hash string) string {
	if canonical, ok := domain.NormalizeVerificationHash(hash); ok {
		hash = canonical
	}
	return g.prefix + string(merchantID) + ":" + hash
}

// Consume atomically marks hash as used. Returns true if it was unused.
func (g *ReplayGuard) Consume(ctx context.Context, merchantID domain.MerchantID, hash string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.key(merchantID, hash), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			// Key already exists: the handshake was already used
			return false, nil
		}
		return false, fmt.Errorf("redis handshake consume: %w", err)
	}
	return result == "OK", nil
}

// Release makes hash consumable again.
func (g *ReplayGuard) Release(ctx context.Context, merchantID domain.MerchantID, hash string) error {
	if err := g.client.Del(ctx, g.key(merchantID, hash)).Err(); err != nil {
		return fmt.Errorf("redis handshake release: %w", err)
	}
	return nil
}
