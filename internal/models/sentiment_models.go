package models

import "time"

// Sentiment labels assigned by the analyzer.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Known source tags. Source is a free-form string; these are the
// values the collectors currently emit.
const (
	SourceUserPost    = "user_post"
	SourceNews        = "news"
	SourceSocialMedia = "social_media"
	SourceSurvey      = "survey"
)

// ScoreTuple is the shared shape every scoring model reduces to.
// Compound is in [-1,1]; the other fields are in [0,1]. Only each
// model's own neutral is defined as a residual; the combined tuple
// carries no sum invariant (see Scores).
type ScoreTuple struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// PatternScore is the polarity/subjectivity model's tuple.
// Subjectivity is kept for auditability but never fused.
type PatternScore struct {
	ScoreTuple
	Subjectivity float64 `json:"subjectivity"`
}

// Scores holds the combined tuple plus the three raw sub-model
// tuples retained for auditability. The combined fields are a
// field-wise weighted sum, so positive+negative+neutral is not
// guaranteed to sum to 1.
type Scores struct {
	ScoreTuple
	Vader   ScoreTuple   `json:"vader"`
	Pattern PatternScore `json:"pattern"`
	Housing ScoreTuple   `json:"housing_context"`
}

// SentimentResult is the immutable record produced per analysis call.
type SentimentResult struct {
	Text             string         `json:"text"`
	Source           string         `json:"source"`
	SentimentLabel   string         `json:"sentiment_label"`
	Confidence       float64        `json:"confidence"`
	Scores           Scores         `json:"scores"`
	Keywords         []string       `json:"keywords"`
	HousingRelevance float64        `json:"housing_relevance"`
	RegionMentioned  string         `json:"region_mentioned,omitempty"`
	ProgramMentioned string         `json:"program_mentioned,omitempty"`
	Language         string         `json:"language,omitempty"`
	Metadata         map[string]any `json:"metadata"`
	AnalyzedAt       time.Time      `json:"analyzed_at"`
}
