package cache

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"time"
)

// Cache 没有 redis 客户端时不会命中，也不会写入
type Cache struct {
	rdb *redis.Client
	l   *zap.Logger
}

func New(rdb *redis.Client, l *zap.Logger) *Cache {
	if l == nil {
		l = zap.NewNop()
	}
	return &Cache{rdb: rdb, l: l}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get 命中时把内容解析到 v 中并返回 true ；任何错误都视为未命中
func (c *Cache) Get(ctx context.Context, key string, v any) bool {
	if !c.Enabled() {
		return false
	}

	cacheBytes, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Error("failed to query cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err = json.Unmarshal(cacheBytes, v); err != nil {
		c.l.Error("failed to unmarshal cache", zap.String("key", key), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		c.rdb.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, v any, expire time.Duration) {
	if !c.Enabled() {
		return
	}

	cacheBytes, err := json.Marshal(v)
	if err != nil {
		c.l.Error("failed to marshal cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err = c.rdb.Set(ctx, key, cacheBytes, expire).Err(); err != nil {
		c.l.Error("failed to set cache", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.l.Error("failed to delete cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
