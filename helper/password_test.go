package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPasswordHash("secret123", hash))
	require.False(t, CheckPasswordHash("secret124", hash))
	require.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}
