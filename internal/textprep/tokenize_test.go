package textprep

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		desc     string
	}{
		{"rumah mampu milik", []string{"rumah", "mampu", "milik"}, "plain words"},
		{"good, fast. easy!", []string{"good", "fast", "easy"}, "punctuation splits"},
		{"pr1ma approved", []string{"pr1ma", "approved"}, "digits stay inside tokens"},
		{"rent-to-own scheme", []string{"rent", "to", "own", "scheme"}, "hyphens split"},
		{"", nil, "empty text"},
		{"  ", nil, "whitespace only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDistinctTokens(t *testing.T) {
	set := DistinctTokens("rumah rumah mahal")
	if len(set) != 2 {
		t.Fatalf("DistinctTokens() returned %d entries, want 2", len(set))
	}
	for _, want := range []string{"rumah", "mahal"} {
		if _, ok := set[want]; !ok {
			t.Errorf("DistinctTokens() missing %q", want)
		}
	}
}

func TestStopwordsCoverBothLanguages(t *testing.T) {
	set := Stopwords()
	for _, w := range []string{"the", "and", "yang", "dengan"} {
		if _, ok := set[w]; !ok {
			t.Errorf("Stopwords() missing %q", w)
		}
	}
	if _, ok := set["rumah"]; ok {
		t.Error("Stopwords() must not contain content words")
	}
}
