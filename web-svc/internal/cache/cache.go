package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TagCache stores rendered catalog payloads under revalidation tags so that a
// mutation can expire every page that showed the mutated data.
type TagCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, tags ...string) error
	InvalidateTag(ctx context.Context, tag string) error
}

type PageCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{Client: client, TTL: ttl}
}

func pageKey(key string) string {
	return "page:" + key
}

func tagKey(tag string) string {
	return "tag:" + tag
}

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.Client.Get(ctx, pageKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *PageCache) Set(ctx context.Context, key string, payload []byte, tags ...string) error {
	if err := c.Client.Set(ctx, pageKey(key), payload, c.TTL).Err(); err != nil {
		return err
	}
	for _, tag := range tags {
		c.Client.SAdd(ctx, tagKey(tag), pageKey(key))
		c.Client.Expire(ctx, tagKey(tag), c.TTL)
	}
	return nil
}

func (c *PageCache) InvalidateTag(ctx context.Context, tag string) error {
	keys, err := c.Client.SMembers(ctx, tagKey(tag)).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := c.Client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return c.Client.Del(ctx, tagKey(tag)).Err()
}

var _ TagCache = (*PageCache)(nil)
