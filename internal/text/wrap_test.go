package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// monospace measures every rune as 1 unit wide.
func monospace(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{name: "empty", text: "", width: 10, want: nil},
		{name: "fits", text: "hello world", width: 11, want: []string{"hello world"}},
		{name: "greedy", text: "the quick brown fox", width: 10, want: []string{"the quick", "brown fox"}},
		{name: "collapses spaces", text: "a    b", width: 10, want: []string{"a b"}},
		{name: "newlines kept", text: "one\n\ntwo", width: 10, want: []string{"one", "", "two"}},
		{name: "long word split", text: "abcdefghij xy", width: 4, want: []string{"abcd", "efgh", "ij", "xy"}},
		{name: "long word joins tail", text: "abcdef g", width: 4, want: []string{"abcd", "ef g"}},
		{name: "unbounded width", text: "a b c", width: 0, want: []string{"a b c"}},
		{name: "multibyte", text: "ééééé", width: 2, want: []string{"éé", "éé", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width, monospace))
		})
	}
}

func TestWrapLinesFitWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	for _, width := range []float64{1, 3, 7, 15, 40} {
		for _, line := range Wrap(text, width, monospace) {
			assert.LessOrEqual(t, monospace(line), width, "width %v line %q", width, line)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b\nc", Normalize("  a \t b \r\n  c  "))
	// "e" + combining acute composes to a single rune.
	assert.Equal(t, "é", Normalize("e\u0301"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("john doe"))
	assert.Equal(t, "AB", Initials("Ann Beth Carol"))
	assert.Equal(t, "Z", Initials("  zoe "))
	assert.Equal(t, "ÉM", Initials("élodie martin"))
	assert.Equal(t, "", Initials(""))
}
