package news

import (
	"context"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(limit int) ([]Item, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var items []Item

	for _, n := range res {
		if limit > 0 && len(items) >= limit {
			break
		}

		item := Item{
			Source: c.Name(),
		}

		if n.Id != nil {
			item.ExternalID = strconv.FormatInt(*n.Id, 10)
		}

		if n.Headline != nil {
			item.Headline = *n.Headline
		}

		if n.Summary != nil {
			item.Summary = *n.Summary
		}

		if n.Url != nil {
			item.URL = *n.Url
		}

		if n.Datetime != nil {
			item.PublishedAt = time.Unix(*n.Datetime, 0)
		}

		if n.Source != nil {
			item.Publisher = *n.Source
		}

		if n.Related != nil && *n.Related != "" {
			item.Symbols = strings.Split(*n.Related, ",")
		} else {
			item.Symbols = []string{}
		}

		items = append(items, item)
	}

	return items, nil
}
