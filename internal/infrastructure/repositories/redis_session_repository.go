package repositories

import (
	"context"
	"encoding/json"
	"time"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/pkg/errors"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "har_session:"

// Retries for the optimistic meta-update transaction.
const maxMetaUpdateRetries = 3

// RedisSessionRepository stores sessions as JSON values with a native TTL,
// so PurgeExpired has nothing to do for this backend.
type RedisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb}
}

func (r *RedisSessionRepository) Save(session *entities.ExtractionSession, ttl time.Duration) error {
	if ttl > 0 {
		session.ExpiresAt = time.Now().Add(ttl)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return errors.ErrInternal(err)
	}
	return r.rdb.Set(context.Background(), sessionKeyPrefix+session.ID, data, ttl).Err()
}

func (r *RedisSessionRepository) Get(sessionID string) (*entities.ExtractionSession, error) {
	data, err := r.rdb.Get(context.Background(), sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, errors.ErrSessionNotFound(nil)
	}
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	var session entities.ExtractionSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.ErrInternal(err)
	}
	return &session, nil
}

// UpdateMeta rewrites the session under WATCH so concurrent probe writes do
// not overwrite each other. KeepTTL leaves the key's expiry untouched.
func (r *RedisSessionRepository) UpdateMeta(sessionID string, index int, meta entities.MediaMeta) error {
	ctx := context.Background()
	key := sessionKeyPrefix + sessionID

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return errors.ErrSessionNotFound(nil)
		}
		if err != nil {
			return errors.ErrInternal(err)
		}

		var session entities.ExtractionSession
		if err := json.Unmarshal(data, &session); err != nil {
			return errors.ErrInternal(err)
		}
		if index < 0 || index >= len(session.Records) {
			return errors.ErrMediaNotFound(nil)
		}
		session.Records[index].Meta = &meta

		updated, err := json.Marshal(&session)
		if err != nil {
			return errors.ErrInternal(err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, redis.KeepTTL)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxMetaUpdateRetries; attempt++ {
		err := r.rdb.Watch(ctx, txf, key)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return errors.ErrInternal(redis.TxFailedErr)
}

func (r *RedisSessionRepository) Delete(sessionID string) error {
	return r.rdb.Del(context.Background(), sessionKeyPrefix+sessionID).Err()
}

func (r *RedisSessionRepository) PurgeExpired(now time.Time) (int, error) {
	// Redis expires keys itself.
	return 0, nil
}
