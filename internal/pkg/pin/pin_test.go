package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"12 4", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateFormat(tt.pin), "pin %q", tt.pin)
	}
}

func TestVerifyPlaintext(t *testing.T) {
	assert.True(t, Verify("1234", "1234"))
	assert.False(t, Verify("1234", "4321"))
	assert.False(t, Verify("", "1234"))
}

func TestVerifyHashed(t *testing.T) {
	hashed, err := Hash("1234")
	require.NoError(t, err)
	require.True(t, len(hashed) > 0)

	assert.True(t, Verify("1234", hashed))
	assert.False(t, Verify("4321", hashed))
}
