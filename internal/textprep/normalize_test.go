package textprep

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		{"Rumah MAMPU Milik", "rumah mampu milik", "lower-cases text"},
		{"check https://example.com/page?id=3 now", "check now", "removes URLs"},
		{"email foo.bar@example.com for details", "email for details", "removes email addresses"},
		{"call 012-3456789 today", "call today", "removes local phone numbers"},
		{"call +60123456789 today", "call today", "removes prefixed phone numbers"},
		{"harga  naik\t100%", "harga naik 100", "collapses whitespace and drops specials"},
		{"so expensive :( #housing", "so expensive housing", "drops emoticons and hashes"},
		{"good, fast. easy!", "good, fast. easy!", "keeps basic punctuation"},
		{"   ", "", "whitespace-only becomes empty"},
		{"", "", "empty stays empty"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"PR1MA application APPROVED! Visit https://pr1ma.my 😊",
		"mahal sangat... contact admin@kpkt.gov.my or 013-9876543",
		"plain text already",
		"   spaced   out   ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
