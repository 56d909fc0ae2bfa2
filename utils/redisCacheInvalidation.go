package utils

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InvalidateCache deletes every key matching pattern and returns how many
// were removed. SCAN is used so large keyspaces do not block the server.
func InvalidateCache(ctx context.Context, rdb redis.UniversalClient, pattern string) (int, error) {
	removed := 0
	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		if err := rdb.Del(ctx, key).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete key %s: %w", key, err)
		}
		removed++
	}

	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("error during SCAN iteration: %w", err)
	}
	return removed, nil
}
