package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/nasyasolleh/home-watch/config"
	"github.com/nasyasolleh/home-watch/internal/logging"
	"github.com/nasyasolleh/home-watch/internal/models"
	"github.com/nasyasolleh/home-watch/internal/sentiment"
	"github.com/nasyasolleh/home-watch/internal/textprep"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	inputPath := flag.String("input", "", "path to a JSON array of batch items (default: stdin)")
	markdown := flag.Bool("markdown", false, "strip markdown from item text before analysis")
	flag.Parse()

	items, err := readItems(*inputPath)
	if err != nil {
		slog.Error("[Main] Failed to read input",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *markdown {
		for i := range items {
			items[i].Text = textprep.StripMarkdown(items[i].Text)
		}
	}

	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		slog.Error("[Main] Failed to initialize analyzer",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	results := analyzer.AnalyzeBatch(items)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		slog.Error("[Main] Failed to write results",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	slog.Info("[Main] Done",
		slog.Int("items", len(results)),
		slog.Int("failed", failed))
}

func readItems(path string) ([]models.BatchItem, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var items []models.BatchItem
	if err := json.NewDecoder(in).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
