package sentiment

import "github.com/nasyasolleh/home-watch/internal/models"

// Model weights for score fusion.
const (
	weightVader   = 0.4
	weightPattern = 0.3
	weightHousing = 0.3
)

// Compound thresholds for the final label decision.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// combineScores fuses the three model tuples with fixed weights,
// applied identically and independently to each of the four fields.
// The combined neutral is NOT re-derived as a residual, so the
// combined positive+negative+neutral carries no sum invariant.
// Downstream consumers depend on these exact numbers; do not
// renormalize here.
func combineScores(vader models.ScoreTuple, pattern models.PatternScore, housing models.ScoreTuple) models.ScoreTuple {
	return models.ScoreTuple{
		Compound: vader.Compound*weightVader + pattern.Compound*weightPattern + housing.Compound*weightHousing,
		Positive: vader.Positive*weightVader + pattern.Positive*weightPattern + housing.Positive*weightHousing,
		Negative: vader.Negative*weightVader + pattern.Negative*weightPattern + housing.Negative*weightHousing,
		Neutral:  vader.Neutral*weightVader + pattern.Neutral*weightPattern + housing.Neutral*weightHousing,
	}
}

// decideSentiment maps the combined tuple to a label and confidence.
// The label is a pure function of the compound via the ±0.05
// thresholds; confidence is the matching combined field, clamped to
// [0,1] regardless of intermediate arithmetic.
func decideSentiment(combined models.ScoreTuple) (string, float64) {
	var label string
	var confidence float64

	switch {
	case combined.Compound >= positiveThreshold:
		label = models.LabelPositive
		confidence = combined.Positive
	case combined.Compound <= negativeThreshold:
		label = models.LabelNegative
		confidence = combined.Negative
	default:
		label = models.LabelNeutral
		confidence = combined.Neutral
	}

	return label, clamp(confidence, 0, 1)
}
