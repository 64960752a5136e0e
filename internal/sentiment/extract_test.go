package sentiment

import (
	"reflect"
	"testing"

	"github.com/nasyasolleh/home-watch/internal/textprep"
)

func TestExtractKeywords(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{
			"the application was rejected and the process was slow",
			[]string{"application", "rejected", "process", "slow"},
			"drops stopwords, keeps first-seen order",
		},
		{
			"rumah mahal mahal mahal",
			[]string{"rumah", "mahal"},
			"deduplicates repeated tokens",
		},
		{
			"it is so of an",
			nil,
			"stopwords and short tokens yield nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := a.extractKeywords(textprep.Tokenize(tt.text))
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("keywords = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"
	got := a.extractKeywords(textprep.Tokenize(text))

	if len(got) != maxKeywords {
		t.Fatalf("keywords = %d entries, want %d", len(got), maxKeywords)
	}
	if got[0] != "alpha" || got[maxKeywords-1] != "juliet" {
		t.Errorf("keywords not in first-seen order: %v", got)
	}
}

func TestHousingRelevance(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("zero tokens returns zero", func(t *testing.T) {
		if got := a.housingRelevance(nil, nil); got != 0.0 {
			t.Errorf("relevance = %v, want 0", got)
		}
	})

	t.Run("housing text scores above zero", func(t *testing.T) {
		tokens := textprep.Tokenize("affordable house loan approved")
		keywords := a.extractKeywords(tokens)
		got := a.housingRelevance(tokens, keywords)
		if got <= 0 || got > 1 {
			t.Errorf("relevance = %v, want in (0,1]", got)
		}
	})

	t.Run("off-topic text scores zero", func(t *testing.T) {
		tokens := textprep.Tokenize("weather forecast sunny tomorrow afternoon")
		keywords := a.extractKeywords(tokens)
		if got := a.housingRelevance(tokens, keywords); got != 0.0 {
			t.Errorf("relevance = %v, want 0", got)
		}
	})
}

func TestExtractRegion(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"i love my new flat", "", "no region mentioned"},
		{"new launch in kuala lumpur today", "kuala lumpur", "two-word state"},
		{"moving to kl next month", "kl", "short alias on word boundary"},
		{"weekly update on applications", "", "alias must not match inside words"},
		{"ppr projects in negeri sembilan", "negeri sembilan", "longest name wins"},
		{"selangor dan johor", "selangor", "first match by priority order"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := a.extractRegion(tt.text); got != tt.expected {
				t.Errorf("extractRegion(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractProgram(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"i applied under pr1ma scheme", "pr1ma", "direct program name"},
		{"rumah selangorku waiting list", "rumah-selangorku", "variant maps to id"},
		{"pprt allocation for rural families", "pprt", "pprt probed before ppr"},
		{"ppr flat in setapak", "ppr", "ppr on its own"},
		{"thinking about rent to own", "rent-to-own", "multi-word variant"},
		{"no scheme mentioned here", "", "absent program"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := a.extractProgram(tt.text); got != tt.expected {
				t.Errorf("extractProgram(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}
