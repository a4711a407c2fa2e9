package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_UniqueAndOpaque(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestHashToken_Deterministic(t *testing.T) {
	h1 := HashToken("secret")
	h2 := HashToken("secret")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("other"))
	assert.NotEqual(t, "secret", h1)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Pass1234")
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(hash, "Pass1234"))
	assert.False(t, CompareHashAndPassword(hash, "pass1234"))
}
