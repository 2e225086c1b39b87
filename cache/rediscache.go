// SPDX-License-Identifier: GPL-3.0-or-later
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCache memoizes classification results in redis. The store being
// unreachable is not an error: Get degrades to a miss and Put to a
// no-op, both logged at debug level.
type RedisCache struct {
	client *redis.Client

	l *logrus.Logger
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		l:      log.Logger(log.LOG_CACHE),
	}
}

// Key is namespace plus the first 16 hex chars of sha256 over the exact
// raw input. Two raw strings that merely normalize identically get
// distinct keys.
func key(namespace, rawInput string) string {
	sum := sha256.Sum256([]byte(rawInput))
	return fmt.Sprintf("%s:%x", namespace, sum)[:len(namespace)+1+16]
}

func (c *RedisCache) Get(ctx context.Context, namespace, rawInput string) *domain.ClassificationResult {
	val, err := c.client.Get(ctx, key(namespace, rawInput)).Result()
	if err != nil {
		if err != redis.Nil {
			c.l.WithField("error", err).Debug("Cache get failed, treating as miss")
		}
		return nil
	}

	result := &domain.ClassificationResult{}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		c.l.WithField("error", err).Debug("Cache entry not decodable, treating as miss")
		return nil
	}

	return result
}

func (c *RedisCache) Put(ctx context.Context, namespace, rawInput string, result *domain.ClassificationResult, ttl time.Duration) {
	data, err := json.Marshal(result)
	if err != nil {
		c.l.WithField("error", err).Debug("Could not encode cache entry")
		return
	}

	err = c.client.Set(ctx, key(namespace, rawInput), data, ttl).Err()
	if err != nil {
		c.l.WithField("error", err).Debug("Cache put failed, skipping")
	}
}
