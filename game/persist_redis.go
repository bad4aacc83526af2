package game

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

type RedisSessionTracker struct {
	rdclient *redis.Client
}

func NewRedisSessionTracker(redisURL string, redisPW string, redisDB int) *RedisSessionTracker {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisSessionTracker{
		rdclient: rdclient,
	}
}

func (r *RedisSessionTracker) Load(code string) (*SessionRecord, error) {
	recordBytes, err := r.rdclient.Get(context.Background(), r.key(code)).Result()
	if err == redis.Nil {
		return nil, errors.Errorf("Session state for code: %s is not found", code)
	} else if err != nil {
		return nil, err
	}
	record := &SessionRecord{}
	if err := persistJSON.Unmarshal([]byte(recordBytes), record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *RedisSessionTracker) Save(code string, record *SessionRecord) error {
	recordBytes, err := persistJSON.Marshal(record)
	if err != nil {
		return err
	}
	return r.rdclient.Set(context.Background(), r.key(code), recordBytes, 0).Err()
}

func (r *RedisSessionTracker) Remove(code string) error {
	return r.rdclient.Del(context.Background(), r.key(code)).Err()
}

func (r *RedisSessionTracker) key(code string) string {
	return "president:session:" + code
}
