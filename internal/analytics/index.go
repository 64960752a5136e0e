// Package analytics computes dashboard aggregates over analyzed
// results: cross-tabulations via bitmap set intersections and
// sentiment trends over time.
package analytics

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/nasyasolleh/home-watch/internal/models"
)

// Index is an in-memory inverted index over a result set. Each
// dimension value (label, region, program, source, keyword) maps to a
// bitmap of result ordinals, so cross-tabulations reduce to bitmap
// intersections. Build it once per result set; it is not safe for
// concurrent mutation.
type Index struct {
	compounds []float64

	byLabel   map[string]*roaring.Bitmap
	byRegion  map[string]*roaring.Bitmap
	byProgram map[string]*roaring.Bitmap
	bySource  map[string]*roaring.Bitmap
	byKeyword map[string]*roaring.Bitmap
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		byLabel:   make(map[string]*roaring.Bitmap),
		byRegion:  make(map[string]*roaring.Bitmap),
		byProgram: make(map[string]*roaring.Bitmap),
		bySource:  make(map[string]*roaring.Bitmap),
		byKeyword: make(map[string]*roaring.Bitmap),
	}
}

// Add indexes one result. Ordinals are assigned in insertion order.
func (ix *Index) Add(r *models.SentimentResult) {
	ord := uint32(len(ix.compounds))
	ix.compounds = append(ix.compounds, r.Scores.Compound)

	addTo(ix.byLabel, r.SentimentLabel, ord)
	addTo(ix.bySource, r.Source, ord)
	if r.RegionMentioned != "" {
		addTo(ix.byRegion, r.RegionMentioned, ord)
	}
	if r.ProgramMentioned != "" {
		addTo(ix.byProgram, r.ProgramMentioned, ord)
	}
	for _, kw := range r.Keywords {
		addTo(ix.byKeyword, kw, ord)
	}
}

func addTo(m map[string]*roaring.Bitmap, key string, ord uint32) {
	bm, ok := m[key]
	if !ok {
		bm = roaring.NewBitmap()
		m[key] = bm
	}
	bm.Add(ord)
}

// Len returns the number of indexed results.
func (ix *Index) Len() int {
	return len(ix.compounds)
}

// RegionLabelCrossTab returns, per region, the count of results for
// each sentiment label.
func (ix *Index) RegionLabelCrossTab() map[string]map[string]uint64 {
	return crossTab(ix.byRegion, ix.byLabel)
}

// ProgramLabelCrossTab returns, per program, the count of results for
// each sentiment label.
func (ix *Index) ProgramLabelCrossTab() map[string]map[string]uint64 {
	return crossTab(ix.byProgram, ix.byLabel)
}

// SourceLabelCrossTab returns, per source tag, the count of results
// for each sentiment label.
func (ix *Index) SourceLabelCrossTab() map[string]map[string]uint64 {
	return crossTab(ix.bySource, ix.byLabel)
}

func crossTab(rows, cols map[string]*roaring.Bitmap) map[string]map[string]uint64 {
	out := make(map[string]map[string]uint64, len(rows))
	for rowKey, rowBm := range rows {
		cells := make(map[string]uint64, len(cols))
		for colKey, colBm := range cols {
			if n := roaring.And(rowBm, colBm).GetCardinality(); n > 0 {
				cells[colKey] = n
			}
		}
		out[rowKey] = cells
	}
	return out
}

// ProgramComparison holds per-program aggregates for the dashboard's
// program effectiveness view.
type ProgramComparison struct {
	Program      string  `json:"program"`
	Count        uint64  `json:"count"`
	MeanCompound float64 `json:"mean_compound"`
}

// ComparePrograms returns per-program result counts and mean combined
// compound scores, ordered by count descending then program id.
func (ix *Index) ComparePrograms() []ProgramComparison {
	out := make([]ProgramComparison, 0, len(ix.byProgram))
	for prog, bm := range ix.byProgram {
		var sum float64
		it := bm.Iterator()
		for it.HasNext() {
			sum += ix.compounds[it.Next()]
		}
		n := bm.GetCardinality()
		out = append(out, ProgramComparison{
			Program:      prog,
			Count:        n,
			MeanCompound: sum / float64(n),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Program < out[j].Program
	})
	return out
}

// KeywordCount pairs a keyword with the number of results mentioning it.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   uint64 `json:"count"`
}

// TopKeywords returns the n most frequent keywords across the indexed
// results, ordered by count descending then keyword.
func (ix *Index) TopKeywords(n int) []KeywordCount {
	out := make([]KeywordCount, 0, len(ix.byKeyword))
	for kw, bm := range ix.byKeyword {
		out = append(out, KeywordCount{Keyword: kw, Count: bm.GetCardinality()})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
