package images

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client looks up a stock photo URL for a headline via the Pexels search
// API. An empty API key disables lookups; articles render without images.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.pexels.com/v1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Search(query string) (string, error) {
	if c.apiKey == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")

	req, err := http.NewRequest("GET", c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("image search request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search status %d", resp.StatusCode)
	}

	var raw struct {
		Photos []struct {
			Src struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("image search decode: %w", err)
	}

	if len(raw.Photos) == 0 {
		return "", nil
	}

	return raw.Photos[0].Src.Large, nil
}
