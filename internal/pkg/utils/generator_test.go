package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(16)

	assert.NoError(t, err)
	assert.Len(t, password, 16)
	for _, c := range password {
		assert.True(t, strings.ContainsRune(passwordAlphabet, c))
	}
}

func TestGeneratePassword_Unique(t *testing.T) {
	first, err := GeneratePassword(16)
	assert.NoError(t, err)
	second, err := GeneratePassword(16)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
