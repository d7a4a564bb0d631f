package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	catalogCacheKey    = "courses:all"
	catalogOverrideKey = "courses:override"
	catalogCacheTTL    = time.Hour
)

// CatalogRepository caches the serialized catalog document and stores the
// admin full-document replacement. The static curriculum package remains
// the fallback when neither exists.
type CatalogRepository struct {
	Redis *redis.Client
}

func NewCatalogRepository(rdb *redis.Client) *CatalogRepository {
	return &CatalogRepository{Redis: rdb}
}

func (r *CatalogRepository) GetCached(ctx context.Context) ([]byte, bool) {
	if r.Redis == nil {
		return nil, false
	}
	data, err := r.Redis.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (r *CatalogRepository) PutCached(ctx context.Context, doc []byte) error {
	if r.Redis == nil {
		return nil
	}
	return r.Redis.Set(ctx, catalogCacheKey, doc, catalogCacheTTL).Err()
}

func (r *CatalogRepository) GetOverride(ctx context.Context) ([]byte, bool) {
	if r.Redis == nil {
		return nil, false
	}
	data, err := r.Redis.Get(ctx, catalogOverrideKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// PutOverride replaces the catalog document and drops the stale cache.
func (r *CatalogRepository) PutOverride(ctx context.Context, doc interface{}) error {
	if r.Redis == nil {
		return redis.ErrClosed
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := r.Redis.Set(ctx, catalogOverrideKey, data, 0).Err(); err != nil {
		return err
	}
	return r.Redis.Del(ctx, catalogCacheKey).Err()
}
