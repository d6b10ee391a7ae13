package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hashed)
	assert.True(t, CheckPassword("password123", hashed))
	assert.False(t, CheckPassword("wrongpassword", hashed))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("pw", "not-a-bcrypt-hash"))
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 80)
	hashed, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, CheckPassword(long, hashed))
	// 只有前 72 字节参与比较
	assert.True(t, CheckPassword(strings.Repeat("p", 72)+"different", hashed))
	assert.False(t, CheckPassword(strings.Repeat("p", 71), hashed))
}
