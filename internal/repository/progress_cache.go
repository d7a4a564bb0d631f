package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ossu_arabic_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// ProgressCache is the derived whole-blob view under progress:{userId}.
// A nil client degrades every call to a miss; the relational rows remain
// the source of truth either way.
type ProgressCache struct {
	Redis *redis.Client
}

func NewProgressCache(rdb *redis.Client) *ProgressCache {
	return &ProgressCache{Redis: rdb}
}

func progressKey(userID string) string {
	return fmt.Sprintf("progress:%s", userID)
}

func (c *ProgressCache) Get(ctx context.Context, userID string) (model.ProgressMapping, bool) {
	if c.Redis == nil {
		return nil, false
	}
	data, err := c.Redis.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var mapping model.ProgressMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, false
	}
	return mapping, true
}

func (c *ProgressCache) Put(ctx context.Context, userID string, mapping model.ProgressMapping) error {
	if c.Redis == nil {
		return nil
	}
	data, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, progressKey(userID), data, 0).Err()
}

func (c *ProgressCache) Delete(ctx context.Context, userID string) error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Del(ctx, progressKey(userID)).Err()
}
