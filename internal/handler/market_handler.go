package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/cache"
	"github.com/Sharif-Hamza/novanews/internal/model"
	"github.com/Sharif-Hamza/novanews/internal/scheduler"

	"github.com/gin-gonic/gin"
)

type CountStore interface {
	CountByStatus(status string) (int, error)
}

type TransitionStore interface {
	GetRecent(limit int) ([]model.LifecycleEntry, error)
}

type StatusSource interface {
	Status() scheduler.Status
}

const recentTransitionLimit = 10

// MarketHandler serves the cached market snapshot and the scheduler
// status. Nothing here calls an upstream API on the request path.
type MarketHandler struct {
	snapshot    *cache.SnapshotCache
	scheduler   StatusSource
	counts      CountStore
	transitions TransitionStore
}

func NewMarketHandler(snapshot *cache.SnapshotCache, sched StatusSource, counts CountStore, transitions TransitionStore) *MarketHandler {
	return &MarketHandler{
		snapshot:    snapshot,
		scheduler:   sched,
		counts:      counts,
		transitions: transitions,
	}
}

func (h *MarketHandler) GetMarkets(c *gin.Context) {
	snapshot, ok := h.snapshot.Get()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No market data available yet"})
		return
	}

	res := MarketsResponse{
		Quotes:    []QuoteResponse{},
		Coins:     []CoinResponse{},
		FetchedAt: snapshot.FetchedAt.Format(time.RFC3339),
	}

	for _, q := range snapshot.Quotes {
		res.Quotes = append(res.Quotes, QuoteResponse{
			Symbol:        q.Symbol,
			Current:       q.Current,
			Change:        q.Change,
			PercentChange: q.PercentChange,
			High:          q.High,
			Low:           q.Low,
		})
	}

	for _, coin := range snapshot.Coins {
		res.Coins = append(res.Coins, CoinResponse{
			ID:           coin.ID,
			Symbol:       coin.Symbol,
			PriceUSD:     coin.PriceUSD,
			Change24hPct: coin.Change24hPct,
			MarketCapUSD: coin.MarketCapUSD,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *MarketHandler) GetStatus(c *gin.Context) {
	status := h.scheduler.Status()

	active, err := h.counts.CountByStatus(model.StatusActive)
	if err != nil {
		slog.Error("error counting active articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	archived, err := h.counts.CountByStatus(model.StatusArchived)
	if err != nil {
		slog.Error("error counting archived articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	entries, err := h.transitions.GetRecent(recentTransitionLimit)
	if err != nil {
		slog.Error("error fetching lifecycle entries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := StatusResponse{
		Running:           status.Running,
		NextUpdate:        status.NextUpdate.Format(time.RFC3339),
		ActiveCount:       active,
		ArchivedCount:     archived,
		RecentTransitions: []TransitionResponse{},
	}

	for _, e := range entries {
		res.RecentTransitions = append(res.RecentTransitions, TransitionResponse{
			ArticleID:  e.ArticleID,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			SweptAt:    e.SweptAt.Format(time.RFC3339),
		})
	}

	if !status.LastRun.IsZero() {
		res.LastRun = status.LastRun.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, res)
}
