package words_test

import (
	"testing"

	"text-summarizer/internal/words"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "only whitespace", text: " \t\n  ", want: 0},
		{name: "repeated spaces", text: "a  b   c", want: 3},
		{name: "mixed whitespace", text: "\tone\ntwo  three\r\nfour ", want: 4},
		{name: "punctuation stays attached", text: "Hello, world!", want: 2},
		{name: "unicode", text: "привет мир 你好", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := words.Count(tt.text); got != tt.want {
				t.Fatalf("unexpected count for %q: got %d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountIsStable(t *testing.T) {
	text := "This is a long enough piece of text to summarize, containing more than fifty characters easily."

	first := words.Count(text)
	second := words.Count(text)

	if first != second {
		t.Fatalf("expected stable count, got %d then %d", first, second)
	}

	if first != 16 {
		t.Fatalf("unexpected count: got %d want 16", first)
	}
}
