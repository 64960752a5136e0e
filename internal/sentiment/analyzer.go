// Package sentiment implements the multi-model scoring and
// feature-extraction pipeline for Malaysian affordable-housing text.
// Three independent models (VADER lexicon, polarity/subjectivity
// pattern, weighted housing keywords) score the normalized text, a
// fixed-weight combiner fuses them into one tuple with a label and
// confidence, and the extractor derives keywords, housing relevance,
// region and program from the same text.
package sentiment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonreiter/govader"

	"github.com/nasyasolleh/home-watch/internal/models"
	"github.com/nasyasolleh/home-watch/internal/textprep"
)

// MaxBatchSize is the per-request item limit API callers enforce
// before handing a batch to AnalyzeBatch.
const MaxBatchSize = 100

// maxStoredTextLength bounds the original text retained on results.
const maxStoredTextLength = 500

// Analyzer runs the scoring pipeline. All lexicon tables are built
// once at construction and never mutated, so a single Analyzer is
// safe for concurrent use; every per-call intermediate is local.
type Analyzer struct {
	vader              *govader.SentimentIntensityAnalyzer
	housingLexicon     map[string]float64
	stopwords          map[string]struct{}
	wordcloudStopwords map[string]struct{}
}

// NewAnalyzer builds an Analyzer, loading the VADER engine and the
// bilingual lexicon and stopword tables. Table validation failures
// return ErrResourceInit; there is no partially-initialized state.
func NewAnalyzer() (*Analyzer, error) {
	stopwords := textprep.Stopwords()

	switch {
	case len(housingLexicon) == 0:
		return nil, fmt.Errorf("%w: housing lexicon is empty", ErrResourceInit)
	case len(patternLexicon) == 0:
		return nil, fmt.Errorf("%w: pattern lexicon is empty", ErrResourceInit)
	case len(stopwords) == 0:
		return nil, fmt.Errorf("%w: stopword set is empty", ErrResourceInit)
	}

	wcStopwords := make(map[string]struct{}, len(wordcloudStopwords))
	for _, w := range wordcloudStopwords {
		wcStopwords[w] = struct{}{}
	}

	a := &Analyzer{
		vader:              govader.NewSentimentIntensityAnalyzer(),
		housingLexicon:     housingLexicon,
		stopwords:          stopwords,
		wordcloudStopwords: wcStopwords,
	}

	slog.Info("[Analyzer] Initialized",
		slog.Int("housing_lexicon", len(housingLexicon)),
		slog.Int("pattern_lexicon", len(patternLexicon)),
		slog.Int("stopwords", len(stopwords)))

	return a, nil
}

// Analyze runs the full pipeline on one text and returns the
// assembled result. It fails with ErrInvalidInput for empty text
// before any processing begins; whitespace-only text is accepted and
// flows through every model's zero branch.
func (a *Analyzer) Analyze(text string, source string, metadata map[string]any) (*models.SentimentResult, error) {
	if text == "" {
		return nil, ErrInvalidInput
	}
	if source == "" {
		source = models.SourceUserPost
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	cleaned := textprep.Normalize(text)
	tokens := textprep.Tokenize(cleaned)

	vaderScore := a.scoreVader(cleaned)
	patternScore := a.scorePattern(tokens)
	housingScore := a.scoreHousing(tokens)
	combined := combineScores(vaderScore, patternScore, housingScore)

	keywords := a.extractKeywords(tokens)
	relevance := a.housingRelevance(tokens, keywords)
	region := a.extractRegion(cleaned)
	prog := a.extractProgram(cleaned)

	label, confidence := decideSentiment(combined)

	result := &models.SentimentResult{
		Text:           truncate(text, maxStoredTextLength),
		Source:         source,
		SentimentLabel: label,
		Confidence:     confidence,
		Scores: models.Scores{
			ScoreTuple: combined,
			Vader:      vaderScore,
			Pattern:    patternScore,
			Housing:    housingScore,
		},
		Keywords:         keywords,
		HousingRelevance: relevance,
		RegionMentioned:  region,
		ProgramMentioned: prog,
		Language:         detectLanguage(cleaned),
		Metadata:         metadata,
		AnalyzedAt:       time.Now().UTC(),
	}

	slog.Debug("[Analyzer] Analysis completed",
		slog.String("label", label),
		slog.Float64("confidence", confidence))

	return result, nil
}

// AnalyzeBatch runs the single-item path over items in order. Each
// item is processed in isolation: a failure yields an error-marked
// entry and never aborts the remaining items. The output has the
// same length and order as the input.
func (a *Analyzer) AnalyzeBatch(items []models.BatchItem) []models.BatchResult {
	results := make([]models.BatchResult, 0, len(items))

	for i, item := range items {
		id := item.ID
		if id == "" {
			id = fmt.Sprintf("batch_%d", i)
		}

		metadata := make(map[string]any, len(item.Metadata)+1)
		for k, v := range item.Metadata {
			metadata[k] = v
		}
		metadata["batch_id"] = id

		result, err := a.Analyze(item.Text, models.SourceUserPost, metadata)
		if err != nil {
			slog.Error("[Analyzer] Batch item failed",
				slog.String("id", id),
				slog.String("error", err.Error()))
			results = append(results, models.BatchResult{
				ID:         id,
				Err:        err.Error(),
				AnalyzedAt: time.Now().UTC(),
			})
			continue
		}

		results = append(results, models.BatchResult{
			ID:         id,
			Result:     result,
			AnalyzedAt: result.AnalyzedAt,
		})
	}

	slog.Info("[Analyzer] Batch analysis completed",
		slog.Int("items", len(results)))

	return results
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
