package model

import "time"

const (
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"

	OthersCategory = "Others"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionFire    = "fire"
)

type Article struct {
	ID             int64
	Title          string
	Summary        string
	Body           string
	Category       string
	Status         string
	Fingerprint    string
	Source         string
	Publisher      string
	SourceURL      string
	ImageURL       string
	Symbols        []string
	SentimentScore int
	ModelUsed      string
	PublishedAt    time.Time
	CreatedAt      time.Time
	ArchivedAt     *time.Time
}

type Reaction struct {
	ID        int64
	ArticleID int64
	Reaction  string
	Count     int
}

type Profile struct {
	ID          int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}

type LifecycleEntry struct {
	ID         int64
	ArticleID  int64
	FromStatus string
	ToStatus   string
	SweptAt    time.Time
}

func ValidReaction(kind string) bool {
	switch kind {
	case ReactionLike, ReactionDislike, ReactionFire:
		return true
	}
	return false
}
