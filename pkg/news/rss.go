package news

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Feeds polled when RSS_FEED_URLS is not set.
var defaultFeedURLs = []string{
	"https://www.coindesk.com/arc/outboundfeeds/rss/",
	"https://cointelegraph.com/rss",
}

type RSSClient struct {
	parser   *gofeed.Parser
	feedURLs []string
}

func NewRSSClient(feedURLs []string) *RSSClient {
	if len(feedURLs) == 0 {
		feedURLs = defaultFeedURLs
	}
	parser := gofeed.NewParser()
	parser.UserAgent = "novanews/1.0"
	return &RSSClient{parser: parser, feedURLs: feedURLs}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(limit int) ([]Item, error) {
	var items []Item
	var lastErr error

	for _, url := range c.feedURLs {
		feed, err := c.parser.ParseURL(url)
		if err != nil {
			lastErr = fmt.Errorf("rss fetch %s: %w", url, err)
			continue
		}

		perFeed := limit
		if perFeed > len(feed.Items) || perFeed <= 0 {
			perFeed = len(feed.Items)
		}

		for _, entry := range feed.Items[:perFeed] {
			publishedAt := time.Time{}
			if entry.PublishedParsed != nil {
				publishedAt = *entry.PublishedParsed
			}

			items = append(items, Item{
				ExternalID:  generateExternalID(entry.Link),
				Headline:    entry.Title,
				Summary:     strings.TrimSpace(entry.Description),
				URL:         entry.Link,
				Publisher:   feed.Title,
				PublishedAt: publishedAt,
				Symbols:     []string{},
				Source:      c.Name(),
			})
		}
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return items, nil
}
