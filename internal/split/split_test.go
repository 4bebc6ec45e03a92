package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitespace_Split(t *testing.T) {
	sp := NewWhitespace()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "words",
			text: "the quick  fox",
			want: []string{"the", "quick", "fox"},
		},
		{
			name: "tabs and newlines",
			text: "a\tb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "only spaces",
			text: "   ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, append([]string{}, sp.Split(tt.text)...))
		})
	}
}

func TestChars_Split(t *testing.T) {
	sp := NewChars()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "ascii",
			text: "cat",
			want: []string{"c", "a", "t"},
		},
		{
			name: "skips whitespace",
			text: "a b",
			want: []string{"a", "b"},
		},
		{
			name: "multibyte runes",
			text: "héllo",
			want: []string{"h", "é", "l", "l", "o"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sp.Split(tt.text))
		})
	}
}
