package generator

import (
	"log/slog"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/cache"
	"github.com/Sharif-Hamza/novanews/internal/dedup"
	"github.com/Sharif-Hamza/novanews/internal/model"
	"github.com/Sharif-Hamza/novanews/pkg/llm"
	"github.com/Sharif-Hamza/novanews/pkg/news"
)

const fetchLimit = 25

type ArticleStore interface {
	Save(article *model.Article) (bool, error)
}

type QuoteSource interface {
	FetchQuotes(symbols []string) ([]model.Quote, error)
}

type CryptoSource interface {
	FetchPrices(coins []string) ([]model.CoinPrice, error)
}

type ImageSource interface {
	Search(query string) (string, error)
}

type Stats struct {
	Fetched    int
	Saved      int
	Duplicates int
	Errors     int
}

// Generator runs one batch: pull items from every source, drop
// duplicates, rewrite survivors through the LLM, attach an image, and
// insert the article rows. Per-item failures are logged and skipped.
type Generator struct {
	sources  []news.NewsClient
	detector *dedup.Detector
	rewriter llm.LLMClient
	images   ImageSource
	articles ArticleStore

	quotes   QuoteSource
	crypto   CryptoSource
	symbols  []string
	coins    []string
	snapshot *cache.SnapshotCache
}

func New(sources []news.NewsClient, detector *dedup.Detector, rewriter llm.LLMClient,
	images ImageSource, articles ArticleStore) *Generator {
	return &Generator{
		sources:  sources,
		detector: detector,
		rewriter: rewriter,
		images:   images,
		articles: articles,
	}
}

// WithMarkets enables the market snapshot refresh at the end of a run.
func (g *Generator) WithMarkets(quotes QuoteSource, crypto CryptoSource,
	symbols, coins []string, snapshot *cache.SnapshotCache) *Generator {
	g.quotes = quotes
	g.crypto = crypto
	g.symbols = symbols
	g.coins = coins
	g.snapshot = snapshot
	return g
}

func (g *Generator) Run() Stats {
	var stats Stats

	for _, source := range g.sources {
		items, err := source.Fetch(fetchLimit)
		if err != nil {
			slog.Error("error fetching news", "source", source.Name(), "error", err)
			stats.Errors++
			continue
		}

		for _, item := range items {
			stats.Fetched++
			if g.processItem(item, &stats) {
				stats.Saved++
			}
		}
	}

	g.refreshSnapshot()

	slog.Info("generation run complete",
		"fetched", stats.Fetched, "saved", stats.Saved,
		"duplicates", stats.Duplicates, "errors", stats.Errors)

	return stats
}

func (g *Generator) processItem(item news.Item, stats *Stats) bool {
	if item.Headline == "" || item.URL == "" {
		return false
	}

	check, err := g.detector.Check(item.Headline, item.Summary)
	if err != nil {
		slog.Error("error checking duplicates", "source", item.Source, "url", item.URL, "error", err)
		stats.Errors++
		return false
	}

	if check.IsDuplicate {
		slog.Info("duplicate item skipped", "source", item.Source, "url", item.URL,
			"reason", check.Reason, "similarity", check.Similarity)
		stats.Duplicates++
		return false
	}

	result, err := g.rewriter.Rewrite(llm.RewriteInput{
		Headline: item.Headline,
		Summary:  item.Summary,
	})
	if err != nil {
		slog.Error("error rewriting item", "source", item.Source, "url", item.URL, "error", err)
		stats.Errors++
		return false
	}

	imageURL, err := g.images.Search(result.Title)
	if err != nil {
		slog.Warn("image lookup failed", "title", result.Title, "error", err)
		imageURL = ""
	}

	category := result.Category
	if category == "" {
		category = model.OthersCategory
	}

	article := model.Article{
		Title:          result.Title,
		Summary:        result.Summary,
		Body:           result.Body,
		Category:       category,
		Fingerprint:    check.Fingerprint,
		Source:         item.Source,
		Publisher:      item.Publisher,
		SourceURL:      item.URL,
		ImageURL:       imageURL,
		Symbols:        item.Symbols,
		SentimentScore: result.SentimentScore,
		ModelUsed:      result.ModelUsed,
		PublishedAt:    item.PublishedAt,
	}

	saved, err := g.articles.Save(&article)
	if err != nil {
		slog.Error("error saving article", "source", item.Source, "url", item.URL, "error", err)
		stats.Errors++
		return false
	}

	if !saved {
		slog.Info("duplicate source url skipped", "source", item.Source, "url", item.URL)
		stats.Duplicates++
		return false
	}

	g.detector.Mark(check.Fingerprint)
	return true
}

func (g *Generator) refreshSnapshot() {
	if g.snapshot == nil {
		return
	}

	snapshot := model.MarketSnapshot{FetchedAt: time.Now()}

	if g.quotes != nil {
		quotes, err := g.quotes.FetchQuotes(g.symbols)
		if err != nil {
			slog.Error("error fetching quotes", "error", err)
		} else {
			snapshot.Quotes = quotes
		}
	}

	if g.crypto != nil {
		prices, err := g.crypto.FetchPrices(g.coins)
		if err != nil {
			slog.Error("error fetching crypto prices", "error", err)
		} else {
			snapshot.Coins = prices
		}
	}

	if len(snapshot.Quotes) > 0 || len(snapshot.Coins) > 0 {
		g.snapshot.Set(&snapshot)
	}
}
