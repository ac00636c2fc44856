package stock

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/lukman83/sportvision-scrap/internal/models"
)

// RedisLookup reads stock levels from an external inventory kept in Redis,
// one integer per key "<Prefix><image_url>". Misses and errors defer to
// Fallback.
type RedisLookup struct {
	Client   *redis.Client
	Prefix   string
	Fallback Estimator
	Logger   *slog.Logger
}

func (r *RedisLookup) Name() string { return "redis" }

func (r *RedisLookup) Key(p models.Product) string {
	return r.Prefix + p.ImageURL
}

func (r *RedisLookup) Estimate(ctx context.Context, p models.Product) (int, error) {
	val, err := r.Client.Get(ctx, r.Key(p)).Result()
	if err == nil {
		n, convErr := strconv.Atoi(val)
		if convErr == nil {
			return Clamp(n), nil
		}
		err = convErr
	}

	if !errors.Is(err, redis.Nil) && r.Logger != nil {
		r.Logger.Debug("stock lookup failed, using fallback",
			"key", r.Key(p),
			"error", err,
		)
	}
	if r.Fallback == nil {
		return 0, nil
	}
	return r.Fallback.Estimate(ctx, p)
}

// Close releases the client's connection pool.
func (r *RedisLookup) Close() error {
	return r.Client.Close()
}
