package news

import "time"

type Item struct {
	ExternalID  string
	Headline    string
	Summary     string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	Symbols     []string
}

type NewsClient interface {
	Fetch(limit int) ([]Item, error)
	Name() string
}
