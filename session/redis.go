package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an idle session survives. Refreshed on
// every write.
const sessionTTL = 7 * 24 * time.Hour

// RedisStore keeps each session in a hash plus a flash list.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sid string) string { return "session:" + sid }
func flashKey(sid string) string   { return "session:" + sid + ":flashes" }

func (s *RedisStore) Get(ctx context.Context, sid, key string) (string, error) {
	val, err := s.client.HGet(ctx, sessionKey(sid), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	if err := s.client.HSet(ctx, sessionKey(sid), key, value).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, sessionKey(sid), sessionTTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid), flashKey(sid)).Err()
}

func (s *RedisStore) AddFlash(ctx context.Context, sid string, flash Flash) error {
	data, err := json.Marshal(flash)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, flashKey(sid), data).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, flashKey(sid), sessionTTL).Err()
}

func (s *RedisStore) PopFlashes(ctx context.Context, sid string) ([]Flash, error) {
	raw, err := s.client.LRange(ctx, flashKey(sid), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err := s.client.Del(ctx, flashKey(sid)).Err(); err != nil {
		return nil, err
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
