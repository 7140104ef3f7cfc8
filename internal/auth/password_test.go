package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomsen/motorlot/internal/auth"
)

func TestHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse", "hash must not embed the plaintext")

	assert.True(t, hasher.Check(hash, "correct horse battery staple"))
	assert.False(t, hasher.Check(hash, "wrong password"))
	assert.False(t, hasher.Check(hash, ""))
}

func TestHasher_DistinctSalts(t *testing.T) {
	hasher := auth.NewHasher(4)

	a, err := hasher.Hash("same password")
	require.NoError(t, err)
	b, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "bcrypt salts must differ per hash")
	assert.True(t, hasher.Check(a, "same password"))
	assert.True(t, hasher.Check(b, "same password"))
}

func TestHasher_BadCostFallsBack(t *testing.T) {
	hasher := auth.NewHasher(-1)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check(hash, "pw"))
}
