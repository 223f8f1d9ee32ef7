package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t\n", nil},
		{"lowercases", "Authentication MIDDLEWARE", []string{"authentication", "middleware"}},
		{"strips non-letters", "added JWT-auth middleware (v2)", []string{"added", "auth", "middleware"}},
		{"drops short tokens", "fix the big bug now", nil},
		{"keeps four-letter tokens", "auth flow done", []string{"auth", "flow", "done"}},
		{"digits split words", "http2handler", []string{"http", "handler"}},
		{"unicode letters survive", "configuração atualizada", []string{"configuração", "atualizada"}},
		{"punctuation soup", "!!! ??? ---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_RuneLengthNotByteLength(t *testing.T) {
	// "café" is 4 runes but 5 bytes in UTF-8 — it must be kept.
	got := Tokenize("café")
	if len(got) != 1 || got[0] != "café" {
		t.Errorf("Tokenize(café) = %v, want [café]", got)
	}
}
