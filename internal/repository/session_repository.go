package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// SessionRepository keeps ephemeral identity records in Redis under
// session:{userId}. Expiry is enforced by TTL only.
type SessionRepository struct {
	Redis *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{Redis: rdb}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (r *SessionRepository) Put(ctx context.Context, s *model.Session, ttl time.Duration) error {
	if r.Redis == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, sessionKey(s.UserID), data, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*model.Session, error) {
	if r.Redis == nil {
		return nil, util.ErrSessionNotFound
	}
	data, err := r.Redis.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	if r.Redis == nil {
		return nil
	}
	return r.Redis.Del(ctx, sessionKey(userID)).Err()
}
