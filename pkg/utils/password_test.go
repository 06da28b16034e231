package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("Abcdef1!")
	assert.NotEqual(t, "Abcdef1!", h)
	assert.True(t, CheckPassword("Abcdef1!", h))
	assert.False(t, CheckPassword("Abcdef1?", h))

	// bcrypt 每次加盐，同一密码两次哈希不同
	assert.NotEqual(t, h, HashPassword("Abcdef1!"))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}
