package sentiment

import "github.com/nasyasolleh/home-watch/internal/models"

// negationWindow is how many tokens back the scorer looks for a
// negator or intensifier modifying a lexicon word.
const negationWindow = 3

// scorePattern is the general-purpose polarity/subjectivity model.
// It averages the prior polarity of every lexicon word in the token
// stream, adjusted for preceding negators and intensifiers, then
// adapts the result to the shared four-field tuple: the positive or
// negative field receives |polarity| depending on sign, neutral is
// the residual, compound is the polarity itself. Subjectivity is
// reported but never fused by the combiner.
func (a *Analyzer) scorePattern(tokens []string) models.PatternScore {
	var (
		polaritySum     float64
		subjectivitySum float64
		matches         int
	)

	for i, tok := range tokens {
		entry, ok := patternLexicon[tok]
		if !ok {
			continue
		}

		pol := entry.polarity
		sub := entry.subjectivity

		start := i - negationWindow
		if start < 0 {
			start = 0
		}
		for j := start; j < i; j++ {
			if factor, ok := patternIntensifiers[tokens[j]]; ok {
				pol *= factor
				sub *= factor
			}
			if _, ok := patternNegators[tokens[j]]; ok {
				pol *= -0.5
			}
		}

		polaritySum += clamp(pol, -1, 1)
		subjectivitySum += clamp(sub, 0, 1)
		matches++
	}

	var polarity, subjectivity float64
	if matches > 0 {
		polarity = polaritySum / float64(matches)
		subjectivity = subjectivitySum / float64(matches)
	}

	score := models.PatternScore{Subjectivity: subjectivity}
	score.Compound = polarity
	if polarity > 0 {
		score.Positive = polarity
	} else {
		score.Negative = -polarity
	}
	score.Neutral = 1 - (score.Positive + score.Negative)

	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
