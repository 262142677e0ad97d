package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, pw := range []string{"pw123", "correct horse battery staple", "ünïcødé"} {
		t.Run(pw, func(t *testing.T) {
			digest, err := HashPassword(pw)
			require.NoError(t, err)

			assert.NotEqual(t, pw, digest, "digest must never be the plaintext")
			assert.True(t, CheckPassword(pw, digest))
			assert.False(t, CheckPassword(pw+"x", digest))
		})
	}
}

func TestHashPassword_FreshSalt(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("pw123", first))
	assert.True(t, CheckPassword("pw123", second))
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	assert.False(t, CheckPassword("pw123", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("pw123", ""))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
