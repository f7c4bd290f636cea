package models

// MarketStatus is the lifecycle state of a market.
// Transitions: pending_validation -> active -> closed -> resolved.
type MarketStatus string

const (
	StatusPendingValidation MarketStatus = "pending_validation"
	StatusActive            MarketStatus = "active"
	StatusClosed            MarketStatus = "closed"
	StatusResolved          MarketStatus = "resolved"
)

// Market represents a binary prediction market.
//
// YesLiquidity/NoLiquidity track 1:1 the amounts committed on each side by
// trades, on top of the fixed seed liquidity assigned at creation.
// TotalVolume is the sum of all trade amounts ever executed against the
// market. All timestamps are Unix seconds.
type Market struct {
	ID              uint64       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Creator         Principal    `json:"creator"`
	CloseDate       uint64       `json:"close_date"`
	Status          MarketStatus `json:"status"`
	YesShares       uint64       `json:"yes_shares"`
	NoShares        uint64       `json:"no_shares"`
	YesLiquidity    uint64       `json:"yes_liquidity"`
	NoLiquidity     uint64       `json:"no_liquidity"`
	TotalVolume     uint64       `json:"total_volume"`
	CreatedAt       uint64       `json:"created_at"`
	ResolvedOutcome *bool        `json:"resolved_outcome,omitempty"`
}

// Trade is an executed share purchase. Immutable once appended to the trade
// log. Price is the execution price in millis (500 = 0.50), always within
// [50, 950].
type Trade struct {
	ID        uint64    `json:"id"`
	MarketID  uint64    `json:"market_id"`
	Trader    Principal `json:"trader"`
	IsYes     bool      `json:"is_yes"`
	Shares    uint64    `json:"shares"`
	Price     uint64    `json:"price"`
	Timestamp uint64    `json:"timestamp"`
}
