package textprep

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens on whitespace and punctuation.
// Digits stay inside tokens so program names like "pr1ma" survive.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// DistinctTokens returns the set of unique tokens in text.
func DistinctTokens(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
