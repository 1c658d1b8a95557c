package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	feed       []model.Article
	feedTotal  int
	archive    []model.Article
	article    *model.Article
	categories []string
	err        error
}

func (f *fakeStore) GetFeed(limit, offset int, category string) ([]model.Article, error) {
	return f.feed, f.err
}

func (f *fakeStore) GetFeedTotal(category string) (int, error) {
	return f.feedTotal, f.err
}

func (f *fakeStore) GetArchive(limit, offset int) ([]model.Article, error) {
	return f.archive, f.err
}

func (f *fakeStore) GetArchiveTotal() (int, error) {
	return len(f.archive), f.err
}

func (f *fakeStore) GetByID(id int64) (*model.Article, error) {
	return f.article, f.err
}

func (f *fakeStore) GetCategories() ([]string, error) {
	return f.categories, f.err
}

type fakeReactions struct {
	reactions []model.Reaction
	byArticle map[int64][]model.Reaction
	count     int
	err       error
}

func (f *fakeReactions) GetByArticleID(articleID int64) ([]model.Reaction, error) {
	return f.reactions, f.err
}

func (f *fakeReactions) GetByArticleIDs(ids []int64) (map[int64][]model.Reaction, error) {
	return f.byArticle, f.err
}

func (f *fakeReactions) Increment(articleID int64, reaction string) (int, error) {
	f.count++
	return f.count, f.err
}

func newTestRouter(store ArticleStore, reactions ReactionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(store, reactions)
	r.GET("/feed", h.GetFeed)
	r.GET("/feed/:id", h.GetArticle)
	r.POST("/feed/:id/reactions", h.PostReaction)
	r.GET("/archive", h.GetArchive)
	r.GET("/categories", h.GetCategories)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetFeed_ReturnArticles(t *testing.T) {
	store := &fakeStore{
		feed: []model.Article{
			{ID: 1, Title: "Markets steady after rate decision", Status: model.StatusActive, Symbols: []string{"SPY"}, SentimentScore: 6},
		},
		feedTotal: 1,
	}
	reactions := &fakeReactions{
		byArticle: map[int64][]model.Reaction{1: {{ArticleID: 1, Reaction: model.ReactionLike, Count: 3}}},
	}

	r := newTestRouter(store, reactions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "Markets steady after rate decision", res.Articles[0].Title)
	assert.Equal(t, 6, res.Articles[0].SentimentScore)
	assert.Equal(t, "", res.Articles[0].ArchivedAt)
	assert.Equal(t, 1, len(res.Articles[0].Reactions))
	assert.Equal(t, "like", res.Articles[0].Reactions[0].Reaction)
	assert.Equal(t, 3, res.Articles[0].Reactions[0].Count)
}

func TestGetFeed_DBError(t *testing.T) {
	store := &fakeStore{err: errors.New("DB down")}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetFeed_DefaultLimit(t *testing.T) {
	store := &fakeStore{feed: []model.Article{}}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed", nil)
	r.ServeHTTP(w, req)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetArticle_Found(t *testing.T) {
	archivedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		article: &model.Article{
			ID:         1,
			Title:      "Chipmaker posts record quarter",
			Status:     model.StatusArchived,
			ArchivedAt: &archivedAt,
		},
	}
	reactions := &fakeReactions{
		reactions: []model.Reaction{{ArticleID: 1, Reaction: model.ReactionFire, Count: 7}},
	}

	r := newTestRouter(store, reactions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Chipmaker posts record quarter", res.Title)
	assert.Equal(t, "archived", res.Status)
	assert.Equal(t, archivedAt.Format(time.RFC3339), res.ArchivedAt)
	assert.Equal(t, 1, len(res.Reactions))
	assert.Equal(t, 7, res.Reactions[0].Count)
}

func TestGetArticle_NotFound(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle_InvalidID(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/feed/aaa", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostReaction_Valid(t *testing.T) {
	store := &fakeStore{article: &model.Article{ID: 1}}
	reactions := &fakeReactions{}
	r := newTestRouter(store, reactions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/feed/1/reactions", strings.NewReader(`{"reaction":"like"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ReactionResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "like", res.Reaction)
	assert.Equal(t, 1, res.Count)
}

func TestPostReaction_UnknownKind(t *testing.T) {
	store := &fakeStore{article: &model.Article{ID: 1}}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/feed/1/reactions", strings.NewReader(`{"reaction":"meh"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostReaction_ArticleNotFound(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/feed/42/reactions", strings.NewReader(`{"reaction":"fire"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories_CachesResult(t *testing.T) {
	store := &fakeStore{categories: []string{"Crypto", "Stocks"}}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, []string{"Crypto", "Stocks"}, res)

	// Second request hits the cache even if the store now errors.
	store.err = errors.New("DB down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	store := &fakeStore{err: errors.New("DB down")}
	r := newTestRouter(store, &fakeReactions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
