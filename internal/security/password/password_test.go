package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/5w1tchy/bookshelf/internal/security/password"
)

func fastArgon() password.Params {
	p := password.DefaultParams()
	p.Memory = 8 * 1024
	p.Iterations = 1
	return p
}

func TestVerifyBcrypt(t *testing.T) {
	hash, err := password.HashBcrypt("wdf#2025", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Contains(t, hash, "$2a$04$")

	ok, err := password.Verify("wdf#2025", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = password.Verify("wdf#2024", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyArgon2(t *testing.T) {
	hash, err := password.HashArgon2("correct horse", fastArgon())
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := password.Verify("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = password.Verify("battery staple", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsUnknownFormats(t *testing.T) {
	for _, hash := range []string{"", "plaintext", "$1$abc$def", "$argon2i$v=19$m=1,t=1,p=1$x$y"} {
		ok, err := password.Verify("x", hash)
		assert.False(t, ok, hash)
		assert.ErrorIs(t, err, password.ErrUnknownFormat, hash)
	}
}

func TestVerifyMalformedArgon2(t *testing.T) {
	ok, err := password.Verify("x", "$argon2id$garbage")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestStrength(t *testing.T) {
	tests := []struct {
		plain string
		min   int
		max   int
	}{
		{"abc", 0, 0},
		{"abcdefgh", 1, 1},
		{"Abcdefgh12", 2, 2},
		{"Tr1cky-Passw0rd!", 4, 4},
		{"admin-Pass0", 2, 2},
	}
	for _, tt := range tests {
		score, hint := password.Strength(tt.plain, "admin")
		assert.GreaterOrEqual(t, score, tt.min, tt.plain)
		assert.LessOrEqual(t, score, tt.max, tt.plain)
		if score < 3 {
			assert.NotEmpty(t, hint, tt.plain)
		}
	}
}
