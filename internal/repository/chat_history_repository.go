package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ossu_arabic_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	historyTTL   = time.Hour
	historyLimit = 10
)

// ChatHistoryRepository holds the rolling conversation window under
// chat:{userId}:{sessionId}. Absence is normal (expired or first turn).
type ChatHistoryRepository struct {
	Redis *redis.Client
}

func NewChatHistoryRepository(rdb *redis.Client) *ChatHistoryRepository {
	return &ChatHistoryRepository{Redis: rdb}
}

func historyKey(userID, sessionID string) string {
	return fmt.Sprintf("chat:%s:%s", userID, sessionID)
}

func (r *ChatHistoryRepository) Get(ctx context.Context, userID, sessionID string) []model.ChatMessage {
	if r.Redis == nil {
		return nil
	}
	data, err := r.Redis.Get(ctx, historyKey(userID, sessionID)).Bytes()
	if err != nil {
		return nil
	}
	var history []model.ChatMessage
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	return history
}

// Append rewrites the window as last-10 prior entries + the new user and
// assistant turns, refreshing the 1h inactivity TTL.
func (r *ChatHistoryRepository) Append(ctx context.Context, userID, sessionID string, prior []model.ChatMessage, userMsg, assistantMsg string) error {
	if r.Redis == nil {
		return nil
	}
	if len(prior) > historyLimit {
		prior = prior[len(prior)-historyLimit:]
	}
	updated := append(append([]model.ChatMessage{}, prior...),
		model.ChatMessage{Role: model.RoleUser, Content: userMsg},
		model.ChatMessage{Role: model.RoleAssistant, Content: assistantMsg},
	)

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, historyKey(userID, sessionID), data, historyTTL).Err()
}
