package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	assert.NoError(t, err)
	assert.Len(t, code, codeLength)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, c), "code contains character outside alphabet: %c", c)
	}
}

func TestGenerateCode_ExcludesAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		assert.NoError(t, err)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "L")
	}
}

func TestGenerateCodePair(t *testing.T) {
	for i := 0; i < 100; i++ {
		handover, ret, err := GenerateCodePair()
		assert.NoError(t, err)
		assert.Len(t, handover, codeLength)
		assert.Len(t, ret, codeLength)
		assert.NotEqual(t, handover, ret)
	}
}
