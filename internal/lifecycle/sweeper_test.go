package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeArticles struct {
	toArchive  []int64
	toDelete   []int64
	archiveErr error
	deleteErr  error

	archiveCutoff time.Time
	deleteCutoff  time.Time
}

func (f *fakeArticles) ArchiveOlderThan(cutoff time.Time) ([]int64, error) {
	f.archiveCutoff = cutoff
	return f.toArchive, f.archiveErr
}

func (f *fakeArticles) DeleteArchivedOlderThan(cutoff time.Time) ([]int64, error) {
	f.deleteCutoff = cutoff
	return f.toDelete, f.deleteErr
}

type logEntry struct {
	articleID  int64
	fromStatus string
	toStatus   string
}

type fakeLog struct {
	entries []logEntry
	err     error
}

func (f *fakeLog) Save(articleID int64, fromStatus, toStatus string) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, logEntry{articleID, fromStatus, toStatus})
	return nil
}

func TestSweep_Transitions(t *testing.T) {
	articles := &fakeArticles{
		toArchive: []int64{1, 2},
		toDelete:  []int64{3},
	}
	log := &fakeLog{}

	s := NewSweeper(articles, log, 24*time.Hour, 72*time.Hour)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	result := s.Sweep(now)

	assert.Equal(t, 2, result.Archived)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, now, result.SweptAt)

	assert.Equal(t, now.Add(-24*time.Hour), articles.archiveCutoff)
	assert.Equal(t, now.Add(-72*time.Hour), articles.deleteCutoff)

	assert.Equal(t, 3, len(log.entries))
	assert.Equal(t, logEntry{3, "archived", "deleted"}, log.entries[0])
	assert.Equal(t, logEntry{1, "active", "archived"}, log.entries[1])
	assert.Equal(t, logEntry{2, "active", "archived"}, log.entries[2])
}

func TestSweep_NothingDue(t *testing.T) {
	articles := &fakeArticles{}
	log := &fakeLog{}

	s := NewSweeper(articles, log, 24*time.Hour, 72*time.Hour)
	result := s.Sweep(time.Now())

	assert.Equal(t, 0, result.Archived)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 0, len(log.entries))
}

func TestSweep_ArchiveErrorDoesNotBlockDelete(t *testing.T) {
	articles := &fakeArticles{
		toDelete:   []int64{9},
		archiveErr: errors.New("DB down"),
	}
	log := &fakeLog{}

	s := NewSweeper(articles, log, 24*time.Hour, 72*time.Hour)
	result := s.Sweep(time.Now())

	assert.Equal(t, 0, result.Archived)
	assert.Equal(t, 1, result.Deleted)
}

func TestSweep_LogErrorContinues(t *testing.T) {
	articles := &fakeArticles{toArchive: []int64{1, 2}}
	log := &fakeLog{err: errors.New("DB down")}

	s := NewSweeper(articles, log, 24*time.Hour, 72*time.Hour)
	result := s.Sweep(time.Now())

	// Transitions are counted even when logging them fails.
	assert.Equal(t, 2, result.Archived)
}

func TestNewSweeper_Defaults(t *testing.T) {
	s := NewSweeper(&fakeArticles{}, &fakeLog{}, 0, 0)

	assert.Equal(t, DefaultArchiveAfter, s.archiveAfter)
	assert.Equal(t, DefaultDeleteAfter, s.deleteAfter)
}
