package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 签发与解析使用进程内同一密钥（启动时从配置加载）
func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123")
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
