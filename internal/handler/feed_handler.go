package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/cache"
	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	GetFeed(limit, offset int, category string) ([]model.Article, error)
	GetFeedTotal(category string) (int, error)
	GetArchive(limit, offset int) ([]model.Article, error)
	GetArchiveTotal() (int, error)
	GetByID(id int64) (*model.Article, error)
	GetCategories() ([]string, error)
}

type ReactionStore interface {
	GetByArticleID(articleID int64) ([]model.Reaction, error)
	GetByArticleIDs(ids []int64) (map[int64][]model.Reaction, error)
	Increment(articleID int64, reaction string) (int, error)
}

type ArticleHandler struct {
	repository ArticleStore
	reactions  ReactionStore
	categories *cache.StringsCache
}

func NewArticleHandler(repository ArticleStore, reactions ReactionStore) *ArticleHandler {
	return &ArticleHandler{
		repository: repository,
		reactions:  reactions,
		categories: cache.NewStringsCache(5 * time.Minute),
	}
}

func toArticleResponse(a model.Article, reactions []model.Reaction) ArticleResponse {
	res := ArticleResponse{
		ID:             a.ID,
		Title:          a.Title,
		Summary:        a.Summary,
		Body:           a.Body,
		Category:       a.Category,
		Status:         a.Status,
		Source:         a.Source,
		Publisher:      a.Publisher,
		SourceURL:      a.SourceURL,
		ImageURL:       a.ImageURL,
		Symbols:        a.Symbols,
		SentimentScore: a.SentimentScore,
		PublishedAt:    a.PublishedAt.Format(time.RFC3339),
		Reactions:      []ReactionResponse{},
	}
	if a.ArchivedAt != nil {
		res.ArchivedAt = a.ArchivedAt.Format(time.RFC3339)
	}
	for _, re := range reactions {
		res.Reactions = append(res.Reactions, ReactionResponse{Reaction: re.Reaction, Count: re.Count})
	}
	return res
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	category := c.Query("category")

	articles, err := h.repository.GetFeed(limit, offset, category)
	if err != nil {
		slog.Error("error fetching feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetFeedTotal(category)
	if err != nil {
		slog.Error("error fetching feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.writeFeed(c, articles, total, limit, offset)
}

func (h *ArticleHandler) GetArchive(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.repository.GetArchive(limit, offset)
	if err != nil {
		slog.Error("error fetching archive", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetArchiveTotal()
	if err != nil {
		slog.Error("error fetching archive total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.writeFeed(c, articles, total, limit, offset)
}

func (h *ArticleHandler) writeFeed(c *gin.Context, articles []model.Article, total, limit, offset int) {
	var ids []int64
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	reactionMap, err := h.reactions.GetByArticleIDs(ids)
	if err != nil {
		slog.Error("error fetching reactions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var articleRes []ArticleResponse
	for _, a := range articles {
		articleRes = append(articleRes, toArticleResponse(a, reactionMap[a.ID]))
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid article id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.repository.GetByID(articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	reactions, err := h.reactions.GetByArticleID(article.ID)
	if err != nil {
		slog.Error("error fetching reactions", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article, reactions))
}

func (h *ArticleHandler) PostReaction(c *gin.Context) {
	id := c.Param("id")

	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid article id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	var body struct {
		Reaction string `json:"reaction"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !model.ValidReaction(body.Reaction) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reaction"})
		return
	}

	article, err := h.repository.GetByID(articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	count, err := h.reactions.Increment(articleID, body.Reaction)
	if err != nil {
		slog.Error("error saving reaction", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, ReactionResponse{Reaction: body.Reaction, Count: count})
}

func (h *ArticleHandler) GetCategories(c *gin.Context) {
	if cached, ok := h.categories.Get(); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := h.repository.GetCategories()
	if err != nil {
		slog.Error("error fetching categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if categories == nil {
		categories = []string{}
	}

	h.categories.Set(categories)
	c.JSON(http.StatusOK, categories)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetFeedTotal("")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramValue := c.Query(name)

	if paramValue == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramValue)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramValue, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
