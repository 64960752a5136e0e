// Package textprep holds the text preparation primitives shared by the
// scoring models and the feature extractor: normalization, word
// tokenization, markdown stripping and the bilingual stopword set.
package textprep

import (
	"regexp"
	"strings"
)

var (
	urlPattern = regexp.MustCompile(`https?://[a-zA-Z0-9$\-_@.&+!*(),/%:~#=?;]+`)

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Malaysian mobile numbers, with or without the +6 country prefix.
	phonePattern = regexp.MustCompile(`\+?6?01[0-46-9]-*[0-9]{7,8}`)

	whitespacePattern = regexp.MustCompile(`\s+`)

	// Everything outside word characters, whitespace and basic
	// punctuation becomes a space.
	specialPattern = regexp.MustCompile(`[^\w\s.!?,-]`)
)

// Normalize cleans raw text into the analyzable form shared by all
// scoring models. The result is lower-cased, stripped of URLs, email
// addresses and Malaysian phone numbers, and reduced to word
// characters plus basic punctuation. Normalize is pure and idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = phonePattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = specialPattern.ReplaceAllString(text, " ")

	// The special-character pass can reintroduce runs of spaces.
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
