package auth_test

import (
	"strings"
	"testing"

	"panelboard/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Salted(t *testing.T) {
	first, err := auth.HashPassword("secret")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", first)
	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	passwords := []string{"secret", "correct horse battery staple", "ünïcødé", " "}
	for _, password := range passwords {
		digest, err := auth.HashPassword(password)
		require.NoError(t, err)

		assert.True(t, auth.CheckPassword(password, digest), password)
		assert.False(t, auth.CheckPassword(password+"x", digest), password)
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, auth.CheckPassword("secret", ""))
	assert.False(t, auth.CheckPassword("secret", "not-a-bcrypt-hash"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := auth.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, auth.ErrPasswordTooLong)

	digest, err := auth.HashPassword(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(strings.Repeat("a", 72), digest))
}
