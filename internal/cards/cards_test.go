package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "ABCD1234EFGH5678", "ABCD1234EFGH5678"},
		{"lowercase", "abcd1234efgh5678", "ABCD1234EFGH5678"},
		{"grouped with spaces", "ABCD 1234 EFGH 5678", "ABCD1234EFGH5678"},
		{"dashes and mixed case", "abcd-1234-EFGH-5678", "ABCD1234EFGH5678"},
		{"only punctuation", "----  ..", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("ABCD1234EFGH5678"))
	assert.True(t, Valid("abcd 1234 efgh 5678"))
	assert.False(t, Valid("ABCD1234"))
	assert.False(t, Valid("ABCD1234EFGH5678X"))
	assert.False(t, Valid(""))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ABCD 1234 EFGH 5678", Format("abcd1234efgh5678"))
	assert.Equal(t, "ABC", Format("abc"))
	assert.Equal(t, "ABCD 12", Format("ab cd-12"))
	assert.Equal(t, "", Format(""))
}
