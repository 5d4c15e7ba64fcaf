package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := Generate("cover")
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestGenerate_Format(t *testing.T) {
	id, err := Generate("cover")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "cover-"))
	// Prefix, dash, 21-character NanoID.
	assert.Len(t, id, len("cover")+1+21)

	// Filename-safe: no path separators or spaces.
	assert.NotContains(t, id, "/")
	assert.NotContains(t, id, " ")
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		id := MustGenerate("cover")
		assert.NotEmpty(t, id)
	})
}
