package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a best-effort read-through cache. Get returns an empty
// string on a miss; only transport failures surface as errors.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

func generateKey(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
