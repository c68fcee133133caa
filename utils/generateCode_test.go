package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeLengthAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateCode(16)
		require.NoError(t, err)
		assert.Len(t, code, 32)
		assert.False(t, seen[code], "duplicate code generated")
		seen[code] = true
	}
}

func TestGenerateTransactionRef(t *testing.T) {
	ref := GenerateTransactionRef()
	assert.True(t, strings.HasPrefix(ref, "PB-"))
	assert.Equal(t, strings.ToUpper(ref), ref)

	other := GenerateTransactionRef()
	assert.NotEqual(t, ref, other)
}
