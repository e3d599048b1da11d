package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// TokenStore 已注销令牌的黑名单，以 jti 为键，令牌过期后自动失效
type TokenStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

var (
	_ TokenStore = NoopTokenStore{}
	_ TokenStore = (*MemoryTokenStore)(nil)
	_ TokenStore = (*RedisTokenStore)(nil)
)

// NoopTokenStore 无状态模式，注销不影响令牌有效性
type NoopTokenStore struct{}

func (NoopTokenStore) Revoke(context.Context, string, time.Time) error { return nil }

func (NoopTokenStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// MemoryTokenStore 单进程黑名单
type MemoryTokenStore struct {
	items cmap.ConcurrentMap[string, time.Time]
	now   func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{items: cmap.New[time.Time](), now: time.Now}
}

func (m *MemoryTokenStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	if !expiresAt.After(m.now()) {
		return nil
	}
	m.items.Set(jti, expiresAt)
	return nil
}

func (m *MemoryTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	expiresAt, ok := m.items.Get(jti)
	if !ok {
		return false, nil
	}
	if !expiresAt.After(m.now()) {
		m.items.Remove(jti)
		return false, nil
	}
	return true, nil
}

// Purge 清理已过期条目
func (m *MemoryTokenStore) Purge() int {
	now := m.now()
	var expired []string
	m.items.IterCb(func(jti string, expiresAt time.Time) {
		if !expiresAt.After(now) {
			expired = append(expired, jti)
		}
	})
	for _, jti := range expired {
		m.items.Remove(jti)
	}
	return len(expired)
}

// StartPurge 按 interval 定期清理过期条目，返回的函数用于停止
func (m *MemoryTokenStore) StartPurge(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Purge()
			case <-done:
				return
			}
		}
	}()
	return func() {
		once.Do(func() { close(done) })
	}
}

func (m *MemoryTokenStore) Len() int {
	return m.items.Count()
}

const revokedTokenKey = "blog:auth:revoked:%s"

// RedisTokenStore 多实例共享黑名单
type RedisTokenStore struct {
	redis *redis.Client
}

func NewRedisTokenStore(rds *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{redis: rds}
}

func (r *RedisTokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.redis.Set(ctx, r.name(jti), 1, ttl).Err()
}

func (r *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.redis.Exists(ctx, r.name(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisTokenStore) name(jti string) string {
	return fmt.Sprintf(revokedTokenKey, jti)
}
