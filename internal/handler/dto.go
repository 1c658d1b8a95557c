package handler

type ArticleResponse struct {
	ID             int64              `json:"id"`
	Title          string             `json:"title"`
	Summary        string             `json:"summary"`
	Body           string             `json:"body"`
	Category       string             `json:"category"`
	Status         string             `json:"status"`
	Source         string             `json:"source"`
	Publisher      string             `json:"publisher"`
	SourceURL      string             `json:"source_url"`
	ImageURL       string             `json:"image_url"`
	Symbols        []string           `json:"symbols"`
	SentimentScore int                `json:"sentiment_score"`
	PublishedAt    string             `json:"published_at"`
	ArchivedAt     string             `json:"archived_at,omitempty"`
	Reactions      []ReactionResponse `json:"reactions"`
}

type ReactionResponse struct {
	Reaction string `json:"reaction"`
	Count    int    `json:"count"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Current       float64 `json:"current"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
}

type CoinResponse struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	PriceUSD     float64 `json:"price_usd"`
	Change24hPct float64 `json:"change_24h_pct"`
	MarketCapUSD float64 `json:"market_cap_usd"`
}

type MarketsResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	Coins     []CoinResponse  `json:"coins"`
	FetchedAt string          `json:"fetched_at"`
}

type StatusResponse struct {
	Running           bool                 `json:"running"`
	NextUpdate        string               `json:"next_update"`
	LastRun           string               `json:"last_run,omitempty"`
	ActiveCount       int                  `json:"active_count"`
	ArchivedCount     int                  `json:"archived_count"`
	RecentTransitions []TransitionResponse `json:"recent_transitions"`
}

type TransitionResponse struct {
	ArticleID  int64  `json:"article_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	SweptAt    string `json:"swept_at"`
}

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}
