package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "no digits", input: "call me!", want: 0},
		{name: "mixed", input: "call 911!", want: 3},
		{name: "formatted number", input: "12-345", want: 5},
		{name: "international", input: "+216 71 123 456", want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DigitCount(tt.input))
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, IsAllDigits("12345"))
	assert.False(t, IsAllDigits("12a45"))
	assert.False(t, IsAllDigits("Jo"))
	assert.False(t, IsAllDigits(""))
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("user@x.com"))
	assert.False(t, LooksLikeEmail("notanemail"))
	assert.False(t, LooksLikeEmail("user@nodot"))
	assert.False(t, LooksLikeEmail("no.at.sign"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Negative", Capitalize("negative"))
	assert.Equal(t, "Neutral", Capitalize("NEUTRAL"))
	assert.Equal(t, "", Capitalize(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "ab", Truncate("abcd", 2))
	assert.Equal(t, "héll", Truncate("héllo", 4))
}
