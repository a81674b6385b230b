package cache

import (
	"context"
	"time"

	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

// Cache is the seam the performance projection caches through. Get returns
// (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
}
