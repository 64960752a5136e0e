package sentiment

import "github.com/nasyasolleh/home-watch/internal/models"

// scoreHousing is the domain-specific model: a pure lookup over the
// weighted bilingual housing lexicon, so its output is exactly
// reproducible from the lexicon and the token list. With no matches
// it returns the zero/neutral tuple {0,0,0,1}. Otherwise the average
// weight is halved and clamped into [-1,1] to become the compound,
// and positive/negative/neutral follow the shared adapter rule.
func (a *Analyzer) scoreHousing(tokens []string) models.ScoreTuple {
	var (
		total   float64
		matches int
	)

	for _, tok := range tokens {
		if weight, ok := a.housingLexicon[tok]; ok {
			total += weight
			matches++
		}
	}

	if matches == 0 {
		return models.ScoreTuple{Neutral: 1}
	}

	avg := total / float64(matches)
	compound := clamp(avg/2, -1, 1)

	score := models.ScoreTuple{Compound: compound}
	if compound > 0 {
		score.Positive = compound
	} else {
		score.Negative = -compound
	}
	score.Neutral = 1 - (score.Positive + score.Negative)

	return score
}
