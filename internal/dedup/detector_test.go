package dedup

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeArticleStore struct {
	fingerprints map[string]bool
	titles       []string
	err          error
}

func (f *fakeArticleStore) HasFingerprint(fingerprint string) (bool, error) {
	return f.fingerprints[fingerprint], f.err
}

func (f *fakeArticleStore) GetRecentTitles(since time.Time) ([]string, error) {
	return f.titles, f.err
}

type fakeCache struct {
	marked map[string]bool
	err    error
}

func (f *fakeCache) Has(fingerprint string) (bool, error) {
	return f.marked[fingerprint], f.err
}

func (f *fakeCache) Mark(fingerprint string) error {
	if f.err != nil {
		return f.err
	}
	f.marked[fingerprint] = true
	return nil
}

func TestDetector_NewItem(t *testing.T) {
	store := &fakeArticleStore{fingerprints: map[string]bool{}}
	cache := &fakeCache{marked: map[string]bool{}}
	d := NewDetector(store, cache)

	res, err := d.Check("Apple reports record earnings", "Strong iPhone sales drove the quarter.")

	assert.Equal(t, nil, err)
	assert.Equal(t, false, res.IsDuplicate)
	assert.NotEqual(t, "", res.Fingerprint)
}

func TestDetector_FingerprintHitInCache(t *testing.T) {
	fp := Fingerprint("Apple reports record earnings", "")
	store := &fakeArticleStore{fingerprints: map[string]bool{}}
	cache := &fakeCache{marked: map[string]bool{fp: true}}
	d := NewDetector(store, cache)

	res, err := d.Check("Apple reports record earnings", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, res.IsDuplicate)
	assert.Equal(t, "fingerprint", res.Reason)
}

func TestDetector_FingerprintHitInDB(t *testing.T) {
	fp := Fingerprint("Apple reports record earnings", "")
	store := &fakeArticleStore{fingerprints: map[string]bool{fp: true}}
	d := NewDetector(store, nil)

	res, err := d.Check("Apple reports record earnings", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, res.IsDuplicate)
	assert.Equal(t, "fingerprint", res.Reason)
}

func TestDetector_TitleSimilarityHit(t *testing.T) {
	store := &fakeArticleStore{
		fingerprints: map[string]bool{},
		titles:       []string{"Apple reports record quarterly earnings results today"},
	}
	d := NewDetector(store, nil)

	res, err := d.Check("Apple reports record quarterly earnings results", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, res.IsDuplicate)
	assert.Equal(t, "title_similarity", res.Reason)
	assert.Equal(t, "Apple reports record quarterly earnings results today", res.MatchingTitle)
}

func TestDetector_EmptyFingerprintSkipsFingerprintCheck(t *testing.T) {
	store := &fakeArticleStore{fingerprints: map[string]bool{"": true}}
	cache := &fakeCache{marked: map[string]bool{"": true}}
	d := NewDetector(store, cache)

	res, err := d.Check("Why the Dow is up", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", res.Fingerprint)
	assert.Equal(t, false, res.IsDuplicate)
}

func TestDetector_MarkIgnoresEmptyFingerprint(t *testing.T) {
	cache := &fakeCache{marked: map[string]bool{}}
	d := NewDetector(&fakeArticleStore{fingerprints: map[string]bool{}}, cache)

	d.Mark("")

	assert.Equal(t, false, cache.marked[""])
}

func TestDetector_CacheFailureFallsThrough(t *testing.T) {
	store := &fakeArticleStore{fingerprints: map[string]bool{}}
	cache := &fakeCache{marked: map[string]bool{}, err: errors.New("redis down")}
	d := NewDetector(store, cache)

	res, err := d.Check("Apple reports record earnings", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, false, res.IsDuplicate)
}

func TestDetector_Mark(t *testing.T) {
	cache := &fakeCache{marked: map[string]bool{}}
	d := NewDetector(&fakeArticleStore{fingerprints: map[string]bool{}}, cache)

	d.Mark("some-fingerprint")

	assert.Equal(t, true, cache.marked["some-fingerprint"])
}
