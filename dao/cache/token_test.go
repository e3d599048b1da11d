package cache

import (
	"Blog/config"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryTokenStore()
	m.now = func() time.Time { return now }

	revoked, err := m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, m.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err = m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// 过期后自动移除
	now = now.Add(2 * time.Hour)
	revoked, err = m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryTokenStoreIgnoresExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryTokenStore()

	require.NoError(t, m.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	assert.Equal(t, 0, m.Len())
}

func TestMemoryTokenStorePurge(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemoryTokenStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Revoke(ctx, "a", now.Add(time.Minute)))
	require.NoError(t, m.Revoke(ctx, "b", now.Add(time.Hour)))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, m.Purge())
	assert.Equal(t, 1, m.Len())
}

func TestNoopTokenStore(t *testing.T) {
	ctx := context.Background()
	var s TokenStore = NoopTokenStore{}

	require.NoError(t, s.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	revoked, err := s.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryTokenStoreStartPurge(t *testing.T) {
	m := NewMemoryTokenStore()
	m.items.Set("expired", time.Now().Add(-time.Minute))
	m.items.Set("live", time.Now().Add(time.Hour))

	stop := m.StartPurge(5 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return m.Len() == 1 }, time.Second, 5*time.Millisecond)
	_, ok := m.items.Get("live")
	assert.True(t, ok)

	stop()
	stop()
}

func TestNewTokenStore(t *testing.T) {
	conf := &config.Config{Jwt: &config.Jwt{Revocation: config.RevocationMemory}}
	s, cleanup, err := NewTokenStore(conf)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &MemoryTokenStore{}, s)

	conf.Jwt.Revocation = config.RevocationNone
	s, cleanupNoop, err := NewTokenStore(conf)
	require.NoError(t, err)
	defer cleanupNoop()
	assert.IsType(t, NoopTokenStore{}, s)
}
