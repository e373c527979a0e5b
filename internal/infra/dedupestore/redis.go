package dedupestore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"membership-backoffice/internal/pkg/config"
	"membership-backoffice/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coupon:debounce:"

// RedisStore is a shared DebounceStore for multi-instance deployments.
// It closes the cross-process double-provision window that the in-memory
// store leaves open, though in-flight coalescing stays process-local.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) (*RedisStore, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return &RedisStore{client: client}, cleanup, nil
}

func (s *RedisStore) LastAccepted(ctx context.Context, key string) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "failed to read debounce key")
	}

	nanos, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "corrupt debounce value")
	}
	return time.Unix(0, nanos), true, nil
}

func (s *RedisStore) MarkAccepted(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	val := strconv.FormatInt(at.UnixNano(), 10)
	if err := s.client.Set(ctx, keyPrefix+key, val, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write debounce key")
	}
	return nil
}
