package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/AsmaaWasel/Dashboard/env"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultPrefix = "dashboard:categories:"
	DefaultTTL    = time.Minute
)

// RedisClient is the subset of the go-redis client the cache uses.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Connect opens a redis client and checks it answers.
func Connect(ctx context.Context, cfg env.RedisConfig) (*redis.Client, error) {

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	logger.GetLogger().Info("Successfully connected to Redis",
		zap.String("address", cfg.Addr),
		zap.Int("database", cfg.DB),
	)

	return client, nil
}

// CategoryCache keeps the sidebar category list per signed-in user. A nil cache
// always misses, and redis failures are logged and treated as misses.
type CategoryCache struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

func NewCategoryCache(client RedisClient, ttl time.Duration) *CategoryCache {

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &CategoryCache{client: client, prefix: DefaultPrefix, ttl: ttl}
}

// Scope derives a cache scope from a credential without storing the credential itself.
func Scope(credential string) string {

	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:16])
}

func (c *CategoryCache) Get(ctx context.Context, scope string) ([]objects.Category, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err != nil {

		if !goerrors.Is(err, redis.Nil) {
			logger.LogError(err, "Reading category cache failed", zap.String("scope", scope))
		}

		return nil, false
	}

	var categories []objects.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		logger.LogError(err, "Decoding category cache failed", zap.String("scope", scope))
		return nil, false
	}

	return categories, true
}

func (c *CategoryCache) Set(ctx context.Context, scope string, categories []objects.Category) {

	if c == nil {
		return
	}

	if categories == nil {
		categories = []objects.Category{}
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		logger.LogError(err, "Encoding category cache failed", zap.String("scope", scope))
		return
	}

	if err := c.client.Set(ctx, c.key(scope), raw, c.ttl).Err(); err != nil {
		logger.LogError(err, "Writing category cache failed", zap.String("scope", scope))
	}
}

func (c *CategoryCache) Invalidate(ctx context.Context, scope string) {

	if c == nil {
		return
	}

	if err := c.client.Del(ctx, c.key(scope)).Err(); err != nil {
		logger.LogError(err, "Invalidating category cache failed", zap.String("scope", scope))
	}
}

func (c *CategoryCache) Close() error {

	if c == nil {
		return nil
	}

	return c.client.Close()
}

func (c *CategoryCache) key(scope string) string {
	return c.prefix + scope
}
