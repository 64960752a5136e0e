package textprep

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	input := "# Housing News\n\nPR1MA units **sold out** in [Selangor](https://news.example.com/a1)."

	got := StripMarkdown(input)

	for _, want := range []string{"Housing News", "PR1MA", "sold out", "Selangor"} {
		if !strings.Contains(got, want) {
			t.Errorf("StripMarkdown() = %q, missing %q", got, want)
		}
	}
	for _, banned := range []string{"#", "**", "https://", "<p>"} {
		if strings.Contains(got, banned) {
			t.Errorf("StripMarkdown() = %q, still contains %q", got, banned)
		}
	}
}

func TestRemoveLinks(t *testing.T) {
	got := RemoveLinks("read [the report](https://gov.my/report) and www.example.com now")
	if strings.Contains(got, "https://") || strings.Contains(got, "www.") {
		t.Errorf("RemoveLinks() = %q, URLs remain", got)
	}
	if !strings.Contains(got, "the report") {
		t.Errorf("RemoveLinks() = %q, anchor text lost", got)
	}
}
