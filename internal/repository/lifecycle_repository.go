package repository

import (
	"database/sql"

	"github.com/Sharif-Hamza/novanews/internal/model"
)

type LifecycleRepository struct {
	db *sql.DB
}

func NewLifecycleRepository(db *sql.DB) *LifecycleRepository {
	return &LifecycleRepository{db: db}
}

func (r *LifecycleRepository) Save(articleID int64, fromStatus, toStatus string) error {
	_, err := r.db.Exec(`
		INSERT INTO lifecycle_log(article_id, from_status, to_status)
		VALUES($1, $2, $3)
	`, articleID, fromStatus, toStatus)
	return err
}

func (r *LifecycleRepository) GetRecent(limit int) ([]model.LifecycleEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, from_status, to_status, swept_at
		FROM lifecycle_log
		ORDER BY swept_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LifecycleEntry
	for rows.Next() {
		var e model.LifecycleEntry
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.FromStatus, &e.ToStatus, &e.SweptAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
