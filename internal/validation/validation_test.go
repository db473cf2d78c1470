package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `validate:"required,email,tld"`
	Password string `validate:"required,alphanum,min=7,max=30"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("tld", allowedTLD))
	return v
}

func TestCredentialRules(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		in      credentials
		wantErr bool
	}{
		{"valid com", credentials{"user@example.com", "abcdefg1"}, false},
		{"valid net", credentials{"user@example.net", "longenoughpass"}, false},
		{"disallowed tld", credentials{"user@example.org", "abcdefg1"}, true},
		{"no tld", credentials{"user@example", "abcdefg1"}, true},
		{"not an email", credentials{"not-an-email", "abcdefg1"}, true},
		{"missing email", credentials{"", "abcdefg1"}, true},
		{"password too short", credentials{"user@example.com", "abc1"}, true},
		{"password too long", credentials{"user@example.com", "a123456789012345678901234567890"}, true},
		{"password not alphanumeric", credentials{"user@example.com", "abcdef!1"}, true},
		{"missing password", credentials{"user@example.com", ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFirstMessage(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(credentials{Email: "user@example.org", Password: "abc"})
	require.Error(t, err)

	// the first violation in declaration order wins
	msg := FirstMessage(err)
	assert.Contains(t, msg, "email")

	err = v.Struct(credentials{Email: "user@example.com", Password: "abc"})
	require.Error(t, err)
	assert.Contains(t, FirstMessage(err), "at least 7")
}

func TestFirstMessage_NotValidationError(t *testing.T) {
	assert.Equal(t, "invalid request body", FirstMessage(assert.AnError))
}
