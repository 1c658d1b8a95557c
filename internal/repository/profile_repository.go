package repository

import (
	"database/sql"

	"github.com/Sharif-Hamza/novanews/internal/model"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUsername(username string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRow(`
		SELECT id, username, display_name, created_at
		FROM profile
		WHERE username = $1
	`, username).Scan(&p.ID, &p.Username, &p.DisplayName, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}
