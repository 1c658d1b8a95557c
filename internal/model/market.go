package model

import "time"

type Quote struct {
	Symbol        string
	Current       float64
	Change        float64
	PercentChange float64
	High          float64
	Low           float64
}

type CoinPrice struct {
	ID           string
	Symbol       string
	PriceUSD     float64
	Change24hPct float64
	MarketCapUSD float64
}

type MarketSnapshot struct {
	Quotes    []Quote
	Coins     []CoinPrice
	FetchedAt time.Time
}
