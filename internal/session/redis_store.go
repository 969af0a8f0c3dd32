package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
)

const (
	redisKeyPrefix   = "quizwizard:session:"
	maxUpdateRetries = 5
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	sealer *config.Sealer
}

// NewRedisStore keeps sessions as JSON under a TTL that is refreshed on every write.
// A non-nil sealer encrypts payloads at rest.
func NewRedisStore(client *redis.Client, ttl time.Duration, sealer *config.Sealer) Store {
	return &redisStore{client: client, ttl: ttl, sealer: sealer}
}

func redisKey(id uuid.UUID) string {
	return redisKeyPrefix + id.String()
}

func (r *redisStore) Create(ctx context.Context, s *Session) error {
	payload, err := r.encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(s.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("error saving session to redis: %w", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session from redis: %w", err)
	}
	return r.decode(data)
}

func (r *redisStore) Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	key := redisKey(id)
	var updated *Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		s, err := r.decode(data)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now()

		payload, err := r.encode(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err == nil {
			updated = s
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("session %s: too many concurrent updates", id)
}

func (r *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return fmt.Errorf("error deleting session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *redisStore) encode(s *Session) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding session: %w", err)
	}
	if r.sealer == nil {
		return payload, nil
	}
	return r.sealer.Seal(payload)
}

func (r *redisStore) decode(data []byte) (*Session, error) {
	if r.sealer != nil {
		opened, err := r.sealer.Open(data)
		if err != nil {
			return nil, fmt.Errorf("error opening sealed session: %w", err)
		}
		data = opened
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error decoding session: %w", err)
	}
	return &s, nil
}
