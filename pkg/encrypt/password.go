package encrypt

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// bcrypt 只取前 72 字节，先做 SHA-256 摘要，任意长度的密码都参与比较
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword 生成带盐的单向哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 校验明文与哈希是否匹配
func VerifyPassword(hashed string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), prehash(password)) == nil
}

// BurnCompare 用户不存在时也做一次等价的哈希比较，使两种失败耗时一致
func BurnCompare(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword(prehash("dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, prehash(password))
}
