package sentiment

import (
	"strings"

	"github.com/nasyasolleh/home-watch/internal/models"
)

// scoreVader is the general-purpose lexicon model. govader already
// reports compound in [-1,1] and pos/neg/neu in [0,1] summing to ~1,
// so the tuple maps across directly. Text with no words short-circuits
// to the all-zero tuple, matching the engine's own output for empty
// input without exercising its tokenizer.
func (a *Analyzer) scoreVader(text string) models.ScoreTuple {
	if strings.TrimSpace(text) == "" {
		return models.ScoreTuple{}
	}

	s := a.vader.PolarityScores(text)
	return models.ScoreTuple{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}
