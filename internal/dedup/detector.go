package dedup

import (
	"fmt"
	"log/slog"
	"time"
)

const SimilarityThreshold = 0.75

// How far back recent titles are compared against.
const recentWindow = 48 * time.Hour

type ArticleStore interface {
	HasFingerprint(fingerprint string) (bool, error)
	GetRecentTitles(since time.Time) ([]string, error)
}

type FingerprintCache interface {
	Has(fingerprint string) (bool, error)
	Mark(fingerprint string) error
}

type Result struct {
	IsDuplicate   bool
	Fingerprint   string
	Reason        string
	MatchingTitle string
	Similarity    float64
}

// Detector combines the fingerprint key with title-similarity scoring.
// The cache is a fast-path only; a cache failure falls through to the
// database check.
type Detector struct {
	store     ArticleStore
	cache     FingerprintCache
	threshold float64
}

func NewDetector(store ArticleStore, cache FingerprintCache) *Detector {
	return &Detector{
		store:     store,
		cache:     cache,
		threshold: SimilarityThreshold,
	}
}

func (d *Detector) Check(title, summary string) (*Result, error) {
	fp := Fingerprint(title, summary)

	// Titles made of only short or stop words produce an empty
	// fingerprint; comparing those would collapse unrelated items.
	if fp == "" {
		return d.checkTitles(title, fp)
	}

	if d.cache != nil {
		seen, err := d.cache.Has(fp)
		if err != nil {
			slog.Warn("fingerprint cache check failed, falling back to DB", "error", err)
		} else if seen {
			return &Result{IsDuplicate: true, Fingerprint: fp, Reason: "fingerprint"}, nil
		}
	}

	exists, err := d.store.HasFingerprint(fp)
	if err != nil {
		return nil, fmt.Errorf("fingerprint lookup: %w", err)
	}
	if exists {
		return &Result{IsDuplicate: true, Fingerprint: fp, Reason: "fingerprint"}, nil
	}

	return d.checkTitles(title, fp)
}

func (d *Detector) checkTitles(title, fp string) (*Result, error) {
	titles, err := d.store.GetRecentTitles(time.Now().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("recent titles lookup: %w", err)
	}

	for _, existing := range titles {
		score := TitleSimilarity(title, existing)
		if score >= d.threshold {
			return &Result{
				IsDuplicate:   true,
				Fingerprint:   fp,
				Reason:        "title_similarity",
				MatchingTitle: existing,
				Similarity:    score,
			}, nil
		}
	}

	return &Result{IsDuplicate: false, Fingerprint: fp}, nil
}

// Mark records a fingerprint after an article is saved. Cache errors are
// logged and ignored; the DB row is the source of truth.
func (d *Detector) Mark(fingerprint string) {
	if d.cache == nil || fingerprint == "" {
		return
	}
	if err := d.cache.Mark(fingerprint); err != nil {
		slog.Warn("failed to mark fingerprint in cache", "error", err)
	}
}
