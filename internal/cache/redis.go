package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

const (
	defaultTTL  = 10 * time.Minute
	pingTimeout = 2 * time.Second
)

// Redis is a JSON cache. When redis is not configured or unreachable at
// startup every call is a miss and writes are dropped.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger

	warned atomic.Bool
}

func New(ctx context.Context, cfg Config, log logger.Logger) *Redis {
	log = log.With("cache")

	r := &Redis{ttl: cfg.TTL, log: log}
	if r.ttl <= 0 {
		r.ttl = defaultTTL
	}

	if !cfg.Enabled() {
		log.Infof("redis is not configured, bypassing cache")
		return r
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		log.Warn(errors.WrapFail(err, "reach redis, bypassing cache"))
		_ = client.Close()
		return r
	}

	r.client = client
	return r
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

// GetJSON decodes the cached value into out and reports whether it was found.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}

	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		r.warnOnce(err)
		return false, errors.WrapFailf(err, "get %s", key)
	}

	if len(b) == 0 {
		return false, nil
	}

	err = json.Unmarshal(b, out)
	if err != nil {
		return false, errors.WrapFailf(err, "decode %s", key)
	}

	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any) error {
	if !r.Available() {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return errors.WrapFailf(err, "encode %s", key)
	}

	err = r.client.Set(ctx, key, b, r.ttl).Err()
	if err != nil {
		r.warnOnce(err)
		return errors.WrapFailf(err, "set %s", key)
	}

	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if !r.Available() || len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		r.warnOnce(err)
		return errors.WrapFail(err, "delete keys")
	}

	return nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) warnOnce(err error) {
	if r.warned.CompareAndSwap(false, true) {
		r.log.Warnf("redis call failed, cache may be stale: %s", err)
	}
}
