package models

import "time"

// BatchItem is one entry of an analyze-batch request.
type BatchItem struct {
	Text     string         `json:"text"`
	ID       string         `json:"id,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// BatchResult is the per-item outcome of a batch run: either Result
// is set (success) or Err is set (failure), never both. Failed items
// still carry a best-effort AnalyzedAt timestamp.
type BatchResult struct {
	ID         string           `json:"id"`
	Result     *SentimentResult `json:"result,omitempty"`
	Err        string           `json:"error,omitempty"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

// Failed reports whether this item's pipeline run errored.
func (b BatchResult) Failed() bool {
	return b.Result == nil
}
