package password

import (
	"fmt"
	"github.com/alexedwards/argon2id"
)

// Hash 计算密码摘要，存库用，永远不存明文
func Hash(plain string) (string, error) {
	digest, err := argon2id.CreateHash(plain, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return digest, nil
}

// Verify 校验明文与摘要是否匹配，摘要格式无效时返回 error
func Verify(plain string, digest string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(plain, digest)
	if err != nil {
		return false, fmt.Errorf("failed to check password: %w", err)
	}

	return match, nil
}
