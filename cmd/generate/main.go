package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Sharif-Hamza/novanews/db"
	"github.com/Sharif-Hamza/novanews/internal/dedup"
	"github.com/Sharif-Hamza/novanews/internal/generator"
	"github.com/Sharif-Hamza/novanews/internal/repository"
	"github.com/Sharif-Hamza/novanews/pkg/images"
	"github.com/Sharif-Hamza/novanews/pkg/llm"
	"github.com/Sharif-Hamza/novanews/pkg/news"

	"github.com/joho/godotenv"
)

// One-shot batch generation run, for manual triggers and cron-style use.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var fingerprints dedup.FingerprintCache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("Redis unavailable, fingerprint cache disabled", "error", err)
	} else {
		defer db.CloseRedis()
		fingerprints = db.FingerprintCache{}
	}

	var sources []news.NewsClient
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		sources = append(sources, news.NewFinnHubClient(key))
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		sources = append(sources, news.NewAlphaVantageClient(key))
	}
	if raw := os.Getenv("RSS_FEED_URLS"); raw != "" {
		var feeds []string
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				feeds = append(feeds, u)
			}
		}
		sources = append(sources, news.NewRSSClient(feeds))
	}

	if len(sources) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	var rewriter llm.LLMClient
	if strings.EqualFold(os.Getenv("LLM_PROVIDER"), "anthropic") {
		rewriter = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	} else {
		rewriter = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	detector := dedup.NewDetector(articleRepo, fingerprints)

	gen := generator.New(sources, detector, rewriter,
		images.NewClient(os.Getenv("PEXELS_API_KEY")), articleRepo)

	stats := gen.Run()

	slog.Info("batch run finished", "fetched", stats.Fetched, "saved", stats.Saved,
		"duplicated", stats.Duplicates, "errors", stats.Errors)
}
