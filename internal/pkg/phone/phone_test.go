package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"already canonical", "0771234567", "0771234567"},
		{"country code", "263771234567", "0771234567"},
		{"plus country code", "+263771234567", "0771234567"},
		{"bare subscriber number", "771234567", "0771234567"},
		{"spaces", "+263 77 123 4567", "0771234567"},
		{"dashes", "077-123-4567", "0771234567"},
		{"parentheses", "(263) 77 123 4567", "0771234567"},
		{"mixed separators", "+263 (77) 123-4567", "0771234567"},
		{"tabs", "+263\t77\t123\t4567", "0771234567"},
		{"newline", "263 77 123\n4567", "0771234567"},
		{"non-breaking space", "077 123 4567", "0771234567"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.mobile))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+263771234567", "263771234567", "771234567", "0771234567"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice changed the result", in)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("+263 77 123 4567", "0771234567"))
	assert.True(t, Equal("263771234567", "771234567"))
	assert.False(t, Equal("0771234567", "0771234568"))
	assert.False(t, Equal("", ""))
}
