package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/nasyasolleh/home-watch/config"
	"github.com/nasyasolleh/home-watch/internal/analytics"
	"github.com/nasyasolleh/home-watch/internal/logging"
	"github.com/nasyasolleh/home-watch/internal/models"
)

type report struct {
	Points    []analytics.TrendPoint        `json:"points"`
	Stats     analytics.TrendStats          `json:"stats"`
	Insights  []string                      `json:"insights"`
	ByRegion  map[string]map[string]uint64  `json:"by_region"`
	ByProgram map[string]map[string]uint64  `json:"by_program"`
	Programs  []analytics.ProgramComparison `json:"programs"`
	Keywords  []analytics.KeywordCount      `json:"keywords"`
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	inputPath := flag.String("input", "", "path to a JSON array of sentiment results (default: stdin)")
	topKeywords := flag.Int("keywords", 20, "number of top keywords to report")
	flag.Parse()

	results, err := readResults(*inputPath)
	if err != nil {
		slog.Error("[Main] Failed to read results",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(results) == 0 {
		slog.Error("[Main] No results to aggregate")
		os.Exit(1)
	}

	index := analytics.NewIndex()
	start, end := results[0].AnalyzedAt, results[0].AnalyzedAt
	for _, r := range results {
		index.Add(r)
		if r.AnalyzedAt.Before(start) {
			start = r.AnalyzedAt
		}
		if r.AnalyzedAt.After(end) {
			end = r.AnalyzedAt
		}
	}

	points := analytics.DailyTrends(results, start, end)

	out := report{
		Points:    points,
		Stats:     analytics.Summarize(points),
		Insights:  analytics.Insights(points),
		ByRegion:  index.RegionLabelCrossTab(),
		ByProgram: index.ProgramLabelCrossTab(),
		Programs:  index.ComparePrograms(),
		Keywords:  index.TopKeywords(*topKeywords),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		slog.Error("[Main] Failed to write report",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Main] Done",
		slog.Int("results", index.Len()),
		slog.Int("days", len(points)),
		slog.String("window", end.Sub(start).Round(time.Hour).String()))
}

func readResults(path string) ([]*models.SentimentResult, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var results []*models.SentimentResult
	if err := json.NewDecoder(in).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}
