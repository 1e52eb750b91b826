package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	require.NoError(t, ComparePassword(hash, "password123"))
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	require.Error(t, ComparePassword(hash, "wrongpassword"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
