// Package search implements the in-memory keyword index over recorded
// conclusions: a tokenizer that normalizes free text into searchable terms
// and an inverted index that maps terms back to conclusion ids.
//
// The index is process-lifetime only. It is rebuilt from scratch on every
// run and is never persisted — the durable record is the markdown log, not
// the index.
package search

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest term worth indexing. Shorter fragments
// ("a", "the", "fix") match too much to be useful.
const minTokenLength = 4

// Tokenize normalizes raw text into a sequence of searchable terms:
// lower-cased, every non-letter rune replaced by a space, split on
// whitespace, terms shorter than minTokenLength discarded.
//
// Empty input yields nil. Tokenize never fails.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	normalized := strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, text)

	var tokens []string
	for _, field := range strings.Fields(normalized) {
		if len([]rune(field)) < minTokenLength {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
