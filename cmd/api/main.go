package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Sharif-Hamza/novanews/db"
	"github.com/Sharif-Hamza/novanews/internal/cache"
	"github.com/Sharif-Hamza/novanews/internal/dedup"
	"github.com/Sharif-Hamza/novanews/internal/generator"
	"github.com/Sharif-Hamza/novanews/internal/handler"
	"github.com/Sharif-Hamza/novanews/internal/lifecycle"
	"github.com/Sharif-Hamza/novanews/internal/repository"
	"github.com/Sharif-Hamza/novanews/internal/scheduler"
	"github.com/Sharif-Hamza/novanews/pkg/images"
	"github.com/Sharif-Hamza/novanews/pkg/llm"
	"github.com/Sharif-Hamza/novanews/pkg/markets"
	"github.com/Sharif-Hamza/novanews/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

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

	articleRepo := repository.NewArticleRepository(db.DB)
	reactionRepo := repository.NewReactionRepository(db.DB)
	lifecycleRepo := repository.NewLifecycleRepository(db.DB)
	profileRepo := repository.NewProfileRepository(db.DB)

	sources := buildSources()
	if len(sources) == 0 {
		log.Fatalf("no news source API keys configured")
	}

	rewriter := buildLLMClient()

	snapshot := cache.NewSnapshotCache(envDurationMinutes("UPDATE_INTERVAL_MINUTES", 30) + 5*time.Minute)

	detector := dedup.NewDetector(articleRepo, fingerprints)
	gen := generator.New(sources, detector, rewriter, images.NewClient(os.Getenv("PEXELS_API_KEY")), articleRepo).
		WithMarkets(
			markets.NewQuoteClient(os.Getenv("FINNHUB_API_KEY")),
			markets.NewCryptoClient(),
			envList("MARKET_SYMBOLS", []string{"AAPL", "MSFT", "NVDA", "SPY"}),
			envList("CRYPTO_COINS", markets.DefaultCoins),
			snapshot,
		)

	sweeper := lifecycle.NewSweeper(articleRepo, lifecycleRepo,
		envDurationHours("ARCHIVE_AFTER_HOURS", 24),
		envDurationHours("DELETE_AFTER_HOURS", 72))

	sched := scheduler.New(gen, sweeper, envDurationMinutes("UPDATE_INTERVAL_MINUTES", 30))
	go sched.Run(context.Background())

	articleHandler := handler.NewArticleHandler(articleRepo, reactionRepo)
	marketHandler := handler.NewMarketHandler(snapshot, sched, articleRepo, lifecycleRepo)
	profileHandler := handler.NewProfileHandler(profileRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/feed", articleHandler.GetFeed)
	r.GET("/feed/:id", articleHandler.GetArticle)
	r.POST("/feed/:id/reactions", articleHandler.PostReaction)
	r.GET("/archive", articleHandler.GetArchive)
	r.GET("/categories", articleHandler.GetCategories)
	r.GET("/markets", marketHandler.GetMarkets)
	r.GET("/status", marketHandler.GetStatus)
	r.GET("/profiles/:username", profileHandler.GetProfile)
	r.GET("/health", articleHandler.GetHealth)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildSources() []news.NewsClient {
	var clients []news.NewsClient
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnHubClient(key))
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		clients = append(clients, news.NewAlphaVantageClient(key))
	}
	if feeds := envList("RSS_FEED_URLS", nil); len(feeds) > 0 || os.Getenv("RSS_ENABLED") == "true" {
		clients = append(clients, news.NewRSSClient(feeds))
	}
	return clients
}

func buildLLMClient() llm.LLMClient {
	if strings.EqualFold(os.Getenv("LLM_PROVIDER"), "anthropic") {
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}
	return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

func envList(name string, defaults []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return defaults
	}

	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func envDurationMinutes(name string, defaultValue int) time.Duration {
	return time.Duration(envInt(name, defaultValue)) * time.Minute
}

func envDurationHours(name string, defaultValue int) time.Duration {
	return time.Duration(envInt(name, defaultValue)) * time.Hour
}

func envInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid env value, using default", "name", name, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}
