package repository

import (
	"database/sql"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/lib/pq"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Save(article *model.Article) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO article(title, summary, body, category, status, fingerprint, source, publisher, source_url, image_url, symbols, sentiment_score, model_used, published_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (source_url) DO NOTHING
		RETURNING id
	`, article.Title, article.Summary, article.Body, article.Category, model.StatusActive,
		article.Fingerprint, article.Source, article.Publisher, article.SourceURL,
		article.ImageURL, pq.Array(article.Symbols), article.SentimentScore,
		article.ModelUsed, article.PublishedAt).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	article.Status = model.StatusActive
	return true, nil
}

func (r *ArticleRepository) GetFeed(limit, offset int, category string) ([]model.Article, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = r.db.Query(`
			SELECT id, title, summary, body, category, status, source, publisher, source_url, image_url, symbols, sentiment_score, model_used, published_at, created_at, archived_at
			FROM article
			WHERE status = $1 AND category = $2
			ORDER BY published_at DESC
			LIMIT $3 OFFSET $4
		`, model.StatusActive, category, limit, offset)
	} else {
		rows, err = r.db.Query(`
			SELECT id, title, summary, body, category, status, source, publisher, source_url, image_url, symbols, sentiment_score, model_used, published_at, created_at, archived_at
			FROM article
			WHERE status = $1
			ORDER BY published_at DESC
			LIMIT $2 OFFSET $3
		`, model.StatusActive, limit, offset)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) GetFeedTotal(category string) (int, error) {
	var total int
	var err error

	if category != "" {
		err = r.db.QueryRow(`
			SELECT COUNT(*) FROM article WHERE status = $1 AND category = $2
		`, model.StatusActive, category).Scan(&total)
	} else {
		err = r.db.QueryRow(`
			SELECT COUNT(*) FROM article WHERE status = $1
		`, model.StatusActive).Scan(&total)
	}

	return total, err
}

func (r *ArticleRepository) GetArchive(limit, offset int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, summary, body, category, status, source, publisher, source_url, image_url, symbols, sentiment_score, model_used, published_at, created_at, archived_at
		FROM article
		WHERE status = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`, model.StatusArchived, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) GetArchiveTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM article WHERE status = $1
	`, model.StatusArchived).Scan(&total)
	return total, err
}

func (r *ArticleRepository) GetByID(id int64) (*model.Article, error) {
	var a model.Article
	var symbols pq.StringArray
	err := r.db.QueryRow(`
		SELECT id, title, summary, body, category, status, source, publisher, source_url, image_url, symbols, sentiment_score, model_used, published_at, created_at, archived_at
		FROM article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Summary, &a.Body, &a.Category, &a.Status, &a.Source,
		&a.Publisher, &a.SourceURL, &a.ImageURL, &symbols, &a.SentimentScore, &a.ModelUsed,
		&a.PublishedAt, &a.CreatedAt, &a.ArchivedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	a.Symbols = symbols
	return &a, nil
}

func (r *ArticleRepository) GetCategories() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT category FROM article
		WHERE status = $1
		ORDER BY category
	`, model.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *ArticleRepository) GetRecentTitles(since time.Time) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT title FROM article
		WHERE status = $1 AND created_at > $2
	`, model.StatusActive, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}

func (r *ArticleRepository) HasFingerprint(fingerprint string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM article WHERE fingerprint = $1)
	`, fingerprint).Scan(&exists)
	return exists, err
}

func (r *ArticleRepository) ArchiveOlderThan(cutoff time.Time) ([]int64, error) {
	rows, err := r.db.Query(`
		UPDATE article
		SET status = $1, archived_at = NOW()
		WHERE status = $2 AND created_at < $3
		RETURNING id
	`, model.StatusArchived, model.StatusActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *ArticleRepository) DeleteArchivedOlderThan(cutoff time.Time) ([]int64, error) {
	rows, err := r.db.Query(`
		DELETE FROM article
		WHERE status = $1 AND created_at < $2
		RETURNING id
	`, model.StatusArchived, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *ArticleRepository) CountByStatus(status string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM article WHERE status = $1
	`, status).Scan(&total)
	return total, err
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		var a model.Article
		var symbols pq.StringArray
		err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Body, &a.Category, &a.Status,
			&a.Source, &a.Publisher, &a.SourceURL, &a.ImageURL, &symbols, &a.SentimentScore,
			&a.ModelUsed, &a.PublishedAt, &a.CreatedAt, &a.ArchivedAt)
		if err != nil {
			return nil, err
		}
		a.Symbols = symbols
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
