package repository

import (
	"database/sql"

	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/lib/pq"
)

type ReactionRepository struct {
	db *sql.DB
}

func NewReactionRepository(db *sql.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

func (r *ReactionRepository) Increment(articleID int64, reaction string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		INSERT INTO article_reaction(article_id, reaction, count)
		VALUES($1, $2, 1)
		ON CONFLICT (article_id, reaction) DO UPDATE SET count = article_reaction.count + 1
		RETURNING count
	`, articleID, reaction).Scan(&count)
	return count, err
}

func (r *ReactionRepository) GetByArticleID(articleID int64) ([]model.Reaction, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, reaction, count
		FROM article_reaction
		WHERE article_id = $1
		ORDER BY reaction
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reactions []model.Reaction
	for rows.Next() {
		var re model.Reaction
		if err := rows.Scan(&re.ID, &re.ArticleID, &re.Reaction, &re.Count); err != nil {
			return nil, err
		}
		reactions = append(reactions, re)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reactions, nil
}

func (r *ReactionRepository) GetByArticleIDs(ids []int64) (map[int64][]model.Reaction, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, reaction, count
		FROM article_reaction
		WHERE article_id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.Reaction)
	for rows.Next() {
		var re model.Reaction
		if err := rows.Scan(&re.ID, &re.ArticleID, &re.Reaction, &re.Count); err != nil {
			return nil, err
		}
		result[re.ArticleID] = append(result[re.ArticleID], re)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
