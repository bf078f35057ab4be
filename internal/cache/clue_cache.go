package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jeopardai/internal/model"

	"github.com/redis/go-redis/v9"
)

// ClueCache fronts the clue repository on the judging hot path. Clues are
// immutable once loaded, so a long TTL is safe.
type ClueCache interface {
	Get(ctx context.Context, id string) (*model.Clue, error)
	Set(ctx context.Context, clue *model.Clue) error
}

type clueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClueCache creates a new clue cache.
func NewClueCache(client *redis.Client) ClueCache {
	return &clueCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *clueCache) key(id string) string {
	return fmt.Sprintf("clue:%s", id)
}

func (c *clueCache) Get(ctx context.Context, id string) (*model.Clue, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var clue model.Clue
	if err := json.Unmarshal([]byte(data), &clue); err != nil {
		return nil, err
	}
	return &clue, nil
}

func (c *clueCache) Set(ctx context.Context, clue *model.Clue) error {
	data, err := json.Marshal(clue)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(clue.ID), data, c.ttl).Err()
}
