package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/openelect/election-api/internal/core/ports"
)

const guardTTL = 30 * time.Second

// VoteGuard is a per-user submission lock backed by Redis SET NX. It rejects
// a second submission from the same user while one is still in flight; the
// TTL bounds how long a crashed caller can hold the lock.
type VoteGuard struct {
	client *redis.Client
}

func NewVoteGuard(client *redis.Client) ports.VoteGuard {
	return &VoteGuard{client: client}
}

func (g *VoteGuard) Acquire(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(userID), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("vote guard acquire: %w", err)
	}
	return ok, nil
}

func (g *VoteGuard) Release(ctx context.Context, userID uuid.UUID) error {
	if err := g.client.Del(ctx, g.key(userID)).Err(); err != nil {
		return fmt.Errorf("vote guard release: %w", err)
	}
	return nil
}

func (g *VoteGuard) key(userID uuid.UUID) string {
	return fmt.Sprintf("vote:inflight:%s", userID)
}
