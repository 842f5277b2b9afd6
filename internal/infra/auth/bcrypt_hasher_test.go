package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("ramadan-2026")
	require.NoError(t, err)
	assert.NotEqual(t, "ramadan-2026", hash)

	assert.True(t, hasher.Check("ramadan-2026", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("ramadan-2026", "not-a-hash"))
}
