package analytics

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/nasyasolleh/home-watch/internal/models"
)

// Dashboard categorization thresholds. These are looser than the
// analyzer's ±0.05 label rule on purpose: dashboard buckets ignore
// weakly-polar results.
const (
	trendPositiveThreshold = 0.1
	trendNegativeThreshold = -0.1
)

// Insight trigger levels for trend summaries.
const (
	slopeInsightThreshold      = 0.01
	volatilityInsightThreshold = 0.2
)

// TrendPoint is one time bucket: mean combined compound score and
// result count.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Sentiment float64   `json:"sentiment"`
	Count     int       `json:"count"`
}

// TrendStats summarizes a trend series.
type TrendStats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Slope float64 `json:"trend_slope"`
}

// CategorizeSentiment buckets a compound score for dashboard charts.
func CategorizeSentiment(compound float64) string {
	switch {
	case compound >= trendPositiveThreshold:
		return models.LabelPositive
	case compound <= trendNegativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// DailyTrends buckets results by UTC day between start and end
// (inclusive) and returns the mean compound and count per non-empty
// day, in chronological order.
func DailyTrends(results []*models.SentimentResult, start, end time.Time) []TrendPoint {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, r := range results {
		day := r.AnalyzedAt.UTC().Truncate(24 * time.Hour)
		if day.Before(start) || day.After(end) {
			continue
		}
		sums[day] += r.Scores.Compound
		counts[day]++
	}

	var points []TrendPoint
	for day := start; !day.After(end); day = day.Add(24 * time.Hour) {
		if n := counts[day]; n > 0 {
			points = append(points, TrendPoint{
				Timestamp: day,
				Sentiment: sums[day] / float64(n),
				Count:     n,
			})
		}
	}
	return points
}

// Summarize computes trend statistics over a series. The slope is the
// least-squares regression coefficient of sentiment over bucket index.
func Summarize(points []TrendPoint) TrendStats {
	if len(points) == 0 {
		return TrendStats{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	minV, maxV := points[0].Sentiment, points[0].Sentiment
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.Sentiment
		if p.Sentiment < minV {
			minV = p.Sentiment
		}
		if p.Sentiment > maxV {
			maxV = p.Sentiment
		}
	}

	stats := TrendStats{
		Mean: stat.Mean(ys, nil),
		Min:  minV,
		Max:  maxV,
	}
	if len(points) > 1 {
		stats.Std = stat.StdDev(ys, nil)
		_, stats.Slope = stat.LinearRegression(xs, ys, nil, false)
	}
	return stats
}

// Insights renders human-readable observations from a trend series.
func Insights(points []TrendPoint) []string {
	if len(points) == 0 {
		return []string{"Insufficient data for trend analysis"}
	}

	stats := Summarize(points)

	var insights []string
	switch {
	case stats.Slope > slopeInsightThreshold:
		insights = append(insights, "Sentiment is showing an improving trend")
	case stats.Slope < -slopeInsightThreshold:
		insights = append(insights, "Sentiment is showing a declining trend")
	default:
		insights = append(insights, "Sentiment remains relatively stable")
	}

	if stats.Std > volatilityInsightThreshold {
		insights = append(insights, "High volatility detected in sentiment")
	}

	return insights
}
