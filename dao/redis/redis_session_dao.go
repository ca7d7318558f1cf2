package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"amenities-dashboard/db"
	"amenities-dashboard/models"
)

const SESSION_KEY_FORMAT_V1 = "session_v1:%s"

// RedisSessionDAO keeps per-user map state between interactions.
type RedisSessionDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

func NewRedisSessionDAO(client db.RedisClient, ttl time.Duration) *RedisSessionDAO {
	return &RedisSessionDAO{client: client, ttl: ttl}
}

// GetSession returns nil, nil when the session does not exist or expired.
func (dao *RedisSessionDAO) GetSession(id string) (*models.Session, error) {
	raw, err := dao.client.Get(fmt.Sprintf(SESSION_KEY_FORMAT_V1, id))
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &s, nil
}

// SaveSession writes the session and refreshes its TTL.
func (dao *RedisSessionDAO) SaveSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", s.ID, err)
	}
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, s.ID)
	if dao.ttl > 0 {
		err = dao.client.SetWithTTL(key, string(data), dao.ttl)
	} else {
		err = dao.client.Set(key, string(data))
	}
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}
	return nil
}
