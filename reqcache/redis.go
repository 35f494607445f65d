// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reqcache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type operation int

const (
	operationSet    operation = 1
	operationExpire operation = 2

	defaultRedisPort     = 6379
	writeChannelCapacity = 100
	keyPrefix            = "wikidict:cache:"
)

// writeQueueItem is a Redis write operation processed
// by the background writer
type writeQueueItem struct {
	operation operation
	key       string
	value     string
}

// RedisReqCache is a Redis backed Cache. All the writes
// (including TTL prolongation on read) are performed
// asynchronously so they do not block request processing.
type RedisReqCache struct {
	ctx         context.Context
	conf        *Conf
	redisClient *redis.Client
	writeQueue  chan writeQueueItem
}

func (rrc *RedisReqCache) createCacheID(key string) string {
	return keyPrefix + key
}

func (rrc *RedisReqCache) ttl() time.Duration {
	return time.Duration(rrc.conf.TTLSecs) * time.Second
}

func (rrc *RedisReqCache) Get(ctx context.Context, key string) (string, error) {
	cacheID := rrc.createCacheID(key)
	val, err := rrc.redisClient.Get(ctx, cacheID).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss

	} else if err != nil {
		return "", fmt.Errorf("cache access error: %w", err)
	}
	select {
	case rrc.writeQueue <- writeQueueItem{operation: operationExpire, key: cacheID}:
	default:
		log.Error().
			Str("key", cacheID).
			Err(fmt.Errorf("Redis cache write queue full")).
			Msg("failed to set TTL for cache entry")
	}
	return val, nil
}

func (rrc *RedisReqCache) Set(ctx context.Context, key, value string) error {
	select {
	case rrc.writeQueue <- writeQueueItem{
		operation: operationSet,
		key:       rrc.createCacheID(key),
		value:     value,
	}:
		return nil
	default:
		return fmt.Errorf("Redis cache write queue full")
	}
}

func (rrc *RedisReqCache) goRunWriter() {
	go func() {
		for {
			select {
			case <-rrc.ctx.Done():
				log.Warn().Msg("closing Redis cache writing queue")
				return
			case op := <-rrc.writeQueue:
				switch op.operation {
				case operationExpire:
					_, err := rrc.redisClient.Expire(rrc.ctx, op.key, rrc.ttl()).Result()
					if err != nil {
						log.Error().
							Err(err).
							Str("key", op.key).
							Msg("Redis cache - failed to execute EXPIRE")
					}
				case operationSet:
					_, err := rrc.redisClient.Set(rrc.ctx, op.key, op.value, rrc.ttl()).Result()
					if err != nil {
						log.Error().
							Err(err).
							Str("key", op.key).
							Msg("Redis cache - failed to execute SET")
					}
				default:
					log.Warn().Int("op", int(op.operation)).Msg("unknown operation in Redis cache queue")
				}
			}
		}
	}()
}

func normalizeRedisAddr(addr string) string {
	if len(strings.Split(addr, ":")) == 1 {
		log.Warn().Msgf("Caching: Redis port not specified, using %d", defaultRedisPort)
		return fmt.Sprintf("%s:%d", addr, defaultRedisPort)
	}
	return addr
}

// NewRedisReqCache creates a new Redis cache and starts
// its background writer. The writer stops once ctx is done.
func NewRedisReqCache(ctx context.Context, conf *Conf) *RedisReqCache {
	ans := &RedisReqCache{
		ctx:  ctx,
		conf: conf,
		redisClient: redis.NewClient(&redis.Options{
			Addr: normalizeRedisAddr(conf.RedisAddr),
			DB:   conf.RedisDB,
		}),
		writeQueue: make(chan writeQueueItem, writeChannelCapacity),
	}
	ans.goRunWriter()
	return ans
}
