package models

// MarketComment is an append-only comment on a market.
type MarketComment struct {
	ID        uint64    `json:"id"`
	MarketID  uint64    `json:"market_id"`
	Author    Principal `json:"author"`
	Content   string    `json:"content"`
	Timestamp uint64    `json:"timestamp"`
}
