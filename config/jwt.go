package config

import (
	"fmt"
	"time"
)

const (
	minJwtSecretBytes = 32
	defaultExpire     = 7 * 24 * time.Hour
)

// 令牌吊销方式
const (
	RevocationNone   = "none"
	RevocationMemory = "memory"
	RevocationRedis  = "redis"
)

type Jwt struct {
	Secret     string `json:"secret" yaml:"secret"`
	Issuer     string `json:"issuer" yaml:"issuer"`
	Audience   string `json:"audience" yaml:"audience"`
	ExpiresIn  int64  `json:"expires_in" yaml:"expires_in"` // 秒
	Revocation string `json:"revocation" yaml:"revocation"`
}

func (j *Jwt) applyDefaults() {
	if j.Issuer == "" {
		j.Issuer = "BlogApi"
	}
	if j.Audience == "" {
		j.Audience = "BlogApp"
	}
	if j.ExpiresIn <= 0 {
		j.ExpiresIn = int64(defaultExpire / time.Second)
	}
	if j.Revocation == "" {
		j.Revocation = RevocationNone
	}
}

func (j *Jwt) Validate() error {
	if len(j.Secret) < minJwtSecretBytes {
		return fmt.Errorf("jwt.secret must be at least %d characters", minJwtSecretBytes)
	}
	switch j.Revocation {
	case RevocationNone, RevocationMemory, RevocationRedis:
	default:
		return fmt.Errorf("unknown jwt.revocation %q", j.Revocation)
	}
	return nil
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}
