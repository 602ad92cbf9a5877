package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/marketplace/model"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	webhookKeyPrefix = "webhook:"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, session model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	IsWebhookProcessed(ctx context.Context, key string) (bool, error)
	MarkWebhookProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// SetSession stores the session payload keyed by token id
func (r *redis) SetSession(ctx context.Context, sessionID string, session model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl).Err()
}

// GetSession retrieves the session stored under a token id
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	val, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// IsWebhookProcessed reports whether a notification with this key was already applied
func (r *redis) IsWebhookProcessed(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, webhookKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkWebhookProcessed records the key; it returns false when it was already present
func (r *redis) MarkWebhookProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, webhookKeyPrefix+key, 1, ttl).Result()
}
