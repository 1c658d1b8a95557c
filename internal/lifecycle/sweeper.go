package lifecycle

import (
	"log/slog"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"
)

const (
	DefaultArchiveAfter = 24 * time.Hour
	DefaultDeleteAfter  = 72 * time.Hour
)

type ArticleStore interface {
	ArchiveOlderThan(cutoff time.Time) ([]int64, error)
	DeleteArchivedOlderThan(cutoff time.Time) ([]int64, error)
}

type LogStore interface {
	Save(articleID int64, fromStatus, toStatus string) error
}

type SweepResult struct {
	Archived int
	Deleted  int
	SweptAt  time.Time
}

// Sweeper ages articles active -> archived -> deleted based on elapsed
// wall-clock time since creation.
type Sweeper struct {
	articles     ArticleStore
	log          LogStore
	archiveAfter time.Duration
	deleteAfter  time.Duration
}

func NewSweeper(articles ArticleStore, log LogStore, archiveAfter, deleteAfter time.Duration) *Sweeper {
	if archiveAfter <= 0 {
		archiveAfter = DefaultArchiveAfter
	}
	if deleteAfter <= 0 {
		deleteAfter = DefaultDeleteAfter
	}
	return &Sweeper{
		articles:     articles,
		log:          log,
		archiveAfter: archiveAfter,
		deleteAfter:  deleteAfter,
	}
}

// Sweep runs both transitions. A failed step is logged and the sweep
// continues; the next tick picks up whatever was missed.
func (s *Sweeper) Sweep(now time.Time) SweepResult {
	result := SweepResult{SweptAt: now}

	deleted, err := s.articles.DeleteArchivedOlderThan(now.Add(-s.deleteAfter))
	if err != nil {
		slog.Error("lifecycle delete sweep failed", "error", err)
	} else {
		for _, id := range deleted {
			if err := s.log.Save(id, model.StatusArchived, model.StatusDeleted); err != nil {
				slog.Error("error logging lifecycle transition", "article_id", id, "error", err)
			}
		}
		result.Deleted = len(deleted)
	}

	archived, err := s.articles.ArchiveOlderThan(now.Add(-s.archiveAfter))
	if err != nil {
		slog.Error("lifecycle archive sweep failed", "error", err)
	} else {
		for _, id := range archived {
			if err := s.log.Save(id, model.StatusActive, model.StatusArchived); err != nil {
				slog.Error("error logging lifecycle transition", "article_id", id, "error", err)
			}
		}
		result.Archived = len(archived)
	}

	if result.Archived > 0 || result.Deleted > 0 {
		slog.Info("lifecycle sweep complete", "archived", result.Archived, "deleted", result.Deleted)
	}

	return result
}
