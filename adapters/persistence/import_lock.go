package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/network-os/pkg/apperror"
)

const (
	importLockPrefix = "import:lock:"
	importLockTTL    = 30 * time.Second
)

// RedisImportLock serializes import-critical sections (duplicate-check-then-
// insert per email, the profile read-merge-write) across concurrent imports.
// The TTL keeps a crashed import from holding a lock forever.
type RedisImportLock struct {
	client *redis.Client
}

func NewRedisImportLock(client *redis.Client) *RedisImportLock {
	return &RedisImportLock{client: client}
}

func (l *RedisImportLock) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey(key), 1, importLockTTL).Result()
	if err != nil {
		return false, apperror.NewInternal("failed to acquire import lock", err)
	}
	return ok, nil
}

func (l *RedisImportLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, lockKey(key)).Err(); err != nil {
		return apperror.NewInternal("failed to release import lock", err)
	}
	return nil
}

func lockKey(key string) string {
	return importLockPrefix + strings.ToLower(strings.TrimSpace(key))
}
