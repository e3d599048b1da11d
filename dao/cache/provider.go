package cache

import (
	"Blog/config"
	"Blog/pkg/client"
	"time"
)

const purgeInterval = 10 * time.Minute

// NewTokenStore 按 jwt.revocation 选择黑名单实现
func NewTokenStore(conf *config.Config) (TokenStore, func(), error) {
	switch conf.Jwt.Revocation {
	case config.RevocationMemory:
		m := NewMemoryTokenStore()
		stop := m.StartPurge(purgeInterval)
		return m, stop, nil
	case config.RevocationRedis:
		rds, err := client.NewRedisClient(conf)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisTokenStore(rds), func() { _ = rds.Close() }, nil
	default:
		return NoopTokenStore{}, func() {}, nil
	}
}
