package markets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"
)

// Coin ids tracked when CRYPTO_COINS is not set.
var DefaultCoins = []string{"bitcoin", "ethereum", "solana"}

type CryptoClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCryptoClient() *CryptoClient {
	return &CryptoClient{
		baseURL:    "https://api.coingecko.com/api/v3",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CryptoClient) FetchPrices(coins []string) ([]model.CoinPrice, error) {
	if len(coins) == 0 {
		coins = DefaultCoins
	}

	params := url.Values{}
	params.Set("ids", strings.Join(coins, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")
	params.Set("include_market_cap", "true")

	resp, err := c.httpClient.Get(c.baseURL + "/simple/price?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko status %d", resp.StatusCode)
	}

	var raw map[string]struct {
		USD          float64 `json:"usd"`
		USD24hChange float64 `json:"usd_24h_change"`
		USDMarketCap float64 `json:"usd_market_cap"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	prices := make([]model.CoinPrice, 0, len(coins))
	for _, id := range coins {
		entry, ok := raw[id]
		if !ok {
			continue
		}
		prices = append(prices, model.CoinPrice{
			ID:           id,
			Symbol:       coinSymbol(id),
			PriceUSD:     entry.USD,
			Change24hPct: entry.USD24hChange,
			MarketCapUSD: entry.USDMarketCap,
		})
	}

	return prices, nil
}

var knownSymbols = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"solana":   "SOL",
	"cardano":  "ADA",
	"dogecoin": "DOGE",
	"ripple":   "XRP",
}

func coinSymbol(id string) string {
	if s, ok := knownSymbols[id]; ok {
		return s
	}
	return strings.ToUpper(id)
}
