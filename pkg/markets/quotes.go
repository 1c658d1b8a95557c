package markets

import (
	"context"
	"fmt"

	"github.com/Sharif-Hamza/novanews/internal/model"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type QuoteClient struct {
	client *finnhub.DefaultApiService
}

func NewQuoteClient(apiKey string) *QuoteClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &QuoteClient{client: client}
}

// FetchQuotes pulls one quote per symbol. A failed symbol is skipped so
// one bad ticker does not blank the whole snapshot.
func (c *QuoteClient) FetchQuotes(symbols []string) ([]model.Quote, error) {
	var quotes []model.Quote
	var lastErr error

	for _, symbol := range symbols {
		res, _, err := c.client.Quote(context.Background()).Symbol(symbol).Execute()
		if err != nil {
			lastErr = fmt.Errorf("quote %s: %w", symbol, err)
			continue
		}

		q := model.Quote{Symbol: symbol}
		if res.C != nil {
			q.Current = float64(*res.C)
		}
		if res.D != nil {
			q.Change = float64(*res.D)
		}
		if res.Dp != nil {
			q.PercentChange = float64(*res.Dp)
		}
		if res.H != nil {
			q.High = float64(*res.H)
		}
		if res.L != nil {
			q.Low = float64(*res.L)
		}

		quotes = append(quotes, q)
	}

	if len(quotes) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return quotes, nil
}
