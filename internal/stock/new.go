package stock

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// Options selects and configures an estimator.
type Options struct {
	Mode          string // "random", "fixed", "redis"
	Fixed         int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// New builds the estimator named by opts.Mode. The redis estimator falls
// back to Random on misses.
func New(opts Options, logger *slog.Logger) (Estimator, error) {
	switch opts.Mode {
	case "", "random":
		return Random{}, nil
	case "fixed":
		return Fixed{N: opts.Fixed}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		return &RedisLookup{
			Client:   client,
			Prefix:   opts.RedisPrefix,
			Fallback: Random{},
			Logger:   logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown stock mode %q (want random, fixed or redis)", opts.Mode)
	}
}

// Close releases any resources held by e. Estimators without a pool are a
// no-op.
func Close(e Estimator) error {
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
