package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// keys
// convention: Key + name + type + (PF) suffix for prefixes
const (
	// token
	KeyAccessTokenStringPF  = "bloghive:token:access_token:"  // param: user_id, val: access_token
	KeyRefreshTokenStringPF = "bloghive:token:refresh_token:" // param: user_id, val: refresh_token

	// blog
	KeyBlogReadDedupStringPF = "bloghive:blog:read:" // param: viewer_blog, val: 1, TTL = read_dedup_time
)

var Nil = redis.Nil

// IsNil reports whether err is a cache miss. The dao helpers wrap every
// error with context, so callers must not compare against Nil directly.
func IsNil(err error) bool {
	return errors.Is(err, Nil)
}

// common method
func set(key string, val any, expireDuration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Set(ctx, key, val, expireDuration)
	return errors.Wrap(cmd.Err(), "")
}

func get(key string) *redis.StringCmd {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return rdb.Get(ctx, key)
}

func setNX(key string, val any, expireDuration time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.SetNX(ctx, key, val, expireDuration)
	return cmd.Val(), errors.Wrap(cmd.Err(), "")
}
