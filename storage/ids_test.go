package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIDsTokenShape(t *testing.T) {
	gen := RandomIDs{}

	token, err := gen.NewToken()
	require.NoError(t, err)
	assert.Len(t, token, 32) // 16 random bytes, hex encoded
	assert.Regexp(t, "^[0-9a-f]{32}$", token)
}

func TestRandomIDsUnique(t *testing.T) {
	gen := RandomIDs{}

	ids := make(map[string]bool)
	tokens := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		require.False(t, ids[id])
		ids[id] = true

		token, err := gen.NewToken()
		require.NoError(t, err)
		require.False(t, tokens[token])
		tokens[token] = true
	}
}
