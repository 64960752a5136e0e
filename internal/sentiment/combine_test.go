package sentiment

import (
	"math"
	"testing"

	"github.com/nasyasolleh/home-watch/internal/models"
)

func tupleWithCompound(c float64) models.ScoreTuple {
	t := models.ScoreTuple{Compound: c}
	if c > 0 {
		t.Positive = c
	} else {
		t.Negative = -c
	}
	t.Neutral = 1 - (t.Positive + t.Negative)
	return t
}

func TestCombineScoresFieldWise(t *testing.T) {
	vader := models.ScoreTuple{Compound: 0.5, Positive: 0.6, Negative: 0.1, Neutral: 0.3}
	pattern := models.PatternScore{ScoreTuple: models.ScoreTuple{Compound: 0.2, Positive: 0.2, Negative: 0, Neutral: 0.8}}
	housing := models.ScoreTuple{Compound: -0.4, Positive: 0, Negative: 0.4, Neutral: 0.6}

	got := combineScores(vader, pattern, housing)

	const eps = 1e-9
	if math.Abs(got.Compound-(0.5*0.4+0.2*0.3+-0.4*0.3)) > eps {
		t.Errorf("compound = %v", got.Compound)
	}
	if math.Abs(got.Positive-(0.6*0.4+0.2*0.3)) > eps {
		t.Errorf("positive = %v", got.Positive)
	}
	if math.Abs(got.Negative-(0.1*0.4+0.4*0.3)) > eps {
		t.Errorf("negative = %v", got.Negative)
	}
	if math.Abs(got.Neutral-(0.3*0.4+0.8*0.3+0.6*0.3)) > eps {
		t.Errorf("neutral = %v", got.Neutral)
	}
}

func TestCombineScoresNoSumInvariant(t *testing.T) {
	// A sub-model may emit a tuple that does not sum to 1 (VADER on
	// wordless text returns all zeros). The combiner must pass the
	// weighted sums through without renormalizing; consumers rely on
	// the raw numbers.
	vader := models.ScoreTuple{}
	pattern := models.PatternScore{ScoreTuple: tupleWithCompound(0)}
	housing := tupleWithCompound(0)

	got := combineScores(vader, pattern, housing)
	sum := got.Positive + got.Negative + got.Neutral
	if math.Abs(sum-0.6) > 1e-9 {
		t.Fatalf("pos+neg+neu = %v, want the unnormalized 0.6", sum)
	}
}

func TestDecideSentimentThresholds(t *testing.T) {
	tests := []struct {
		compound float64
		expected string
		desc     string
	}{
		{0.05, models.LabelPositive, "exactly at positive threshold"},
		{-0.05, models.LabelNegative, "exactly at negative threshold"},
		{0.049999, models.LabelNeutral, "just below positive threshold"},
		{-0.049999, models.LabelNeutral, "just above negative threshold"},
		{0.8, models.LabelPositive, "clearly positive"},
		{-0.8, models.LabelNegative, "clearly negative"},
		{0, models.LabelNeutral, "zero compound"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			label, confidence := decideSentiment(tupleWithCompound(tt.compound))
			if label != tt.expected {
				t.Errorf("label = %q, want %q", label, tt.expected)
			}
			if confidence < 0 || confidence > 1 {
				t.Errorf("confidence = %v, want in [0,1]", confidence)
			}
		})
	}
}

func TestDecideSentimentClampsConfidence(t *testing.T) {
	// Adversarial sub-model output can push combined fields outside
	// nominal ranges; confidence must still land in [0,1].
	overshoot := models.ScoreTuple{Compound: 0.9, Positive: 3.5, Negative: -1, Neutral: 0}
	label, confidence := decideSentiment(overshoot)
	if label != models.LabelPositive || confidence != 1.0 {
		t.Errorf("got (%q, %v), want (positive, 1.0)", label, confidence)
	}

	undershoot := models.ScoreTuple{Compound: -0.9, Positive: 0, Negative: -0.5, Neutral: 0}
	label, confidence = decideSentiment(undershoot)
	if label != models.LabelNegative || confidence != 0.0 {
		t.Errorf("got (%q, %v), want (negative, 0.0)", label, confidence)
	}
}
