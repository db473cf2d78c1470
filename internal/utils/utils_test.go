package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("abcdefg1")
	require.NoError(t, err)
	assert.NotEqual(t, "abcdefg1", hash)

	assert.NoError(t, CheckPasswordHash(hash, "abcdefg1"))
	assert.Error(t, CheckPasswordHash(hash, "wrongpass1"))
}

func TestGravatarURL(t *testing.T) {
	got := GravatarURL("test@example.com")
	assert.Equal(t, "https://s.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=100", got)

	// case and surrounding whitespace must not change the address hash
	assert.Equal(t, got, GravatarURL("  Test@Example.COM "))
}

func TestVerificationEmailBody(t *testing.T) {
	body := VerificationEmailBody("http://localhost:3000", "abc123")
	assert.Contains(t, body, "http://localhost:3000/auth/verify/abc123")
	assert.Contains(t, body, "verify your email")
}

func TestSMTPClient_NotConfigured(t *testing.T) {
	var s *SMTPClient
	assert.Error(t, s.Send("who@example.com", "subj", "body"))
}
