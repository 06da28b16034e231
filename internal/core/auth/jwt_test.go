package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "blogpress-test", TTL: ttl}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := newTestJWTer(24 * time.Hour)

	tok, err := j.Issue("u1", "a@b.com", "creator", "Tech")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "creator", claims.Role)
	assert.Equal(t, "Tech", claims.Category)
}

func TestParseExpired(t *testing.T) {
	j := newTestJWTer(-time.Minute) // 签出即过期

	tok, err := j.Issue("u1", "a@b.com", "reader", "")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	other := &JWTer{Secret: []byte("other-secret"), Issuer: "blogpress-test", TTL: time.Hour}

	tok, err := j.Issue("u1", "a@b.com", "reader", "")
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseTampered(t *testing.T) {
	j := newTestJWTer(time.Hour)

	tok, err := j.Issue("u1", "a@b.com", "reader", "")
	require.NoError(t, err)

	// 篡改任何一段都让签名失效
	tampered := tok[:len(tok)-2] + "xx"
	_, err = j.Parse(tampered)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer(time.Hour)
	_, err := j.Parse("not-a-token")
	assert.Error(t, err)
}
