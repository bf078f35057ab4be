package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jeopardai/internal/model"

	"github.com/redis/go-redis/v9"
)

// VerdictCache stores successful verdicts keyed by clue id and normalized
// submitted answer, so an identical resubmission returns the same verdict
// without re-charging the external evaluator. Evaluator failures are never
// cached.
type VerdictCache interface {
	Get(ctx context.Context, clueID, userAnswer string) (*model.Verdict, error)
	Set(ctx context.Context, clueID, userAnswer string, verdict *model.Verdict) error
}

type verdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerdictCache creates a new verdict cache.
func NewVerdictCache(client *redis.Client) VerdictCache {
	return &verdictCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *verdictCache) key(clueID, userAnswer string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(userAnswer))))
	return fmt.Sprintf("verdict:%s:%s", clueID, hex.EncodeToString(sum[:8]))
}

func (c *verdictCache) Get(ctx context.Context, clueID, userAnswer string) (*model.Verdict, error) {
	data, err := c.client.Get(ctx, c.key(clueID, userAnswer)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var verdict model.Verdict
	if err := json.Unmarshal([]byte(data), &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

func (c *verdictCache) Set(ctx context.Context, clueID, userAnswer string, verdict *model.Verdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(clueID, userAnswer), data, c.ttl).Err()
}
