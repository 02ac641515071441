package mem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

// RedisSessionStore backs the session store with redis so sessions survive
// restarts and can be shared across instances.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *RedisSessionStore) Create(ctx context.Context, session *db_models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, sessionKey(session.SessionID), payload, s.ttl).Err(); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*db_models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, utils.ErrSessionNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	var session db_models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &session, nil
}
