package models

// Principal is the opaque caller identity supplied by the hosting layer.
// The core only compares it and uses it as a map key; it is never
// authenticated here.
type Principal string

// AnonymousPrincipal identifies callers the hosting layer could not attribute.
const AnonymousPrincipal Principal = "anonymous"

// UserProfile tracks a trader's activity. Created lazily on first trade.
//
// SuccessfulPredictions and Badges are carried on the profile but no
// operation mutates them yet; resolution does not score predictions.
type UserProfile struct {
	Principal             Principal `json:"principal"`
	Username              string    `json:"username"`
	XP                    uint64    `json:"xp"`
	TotalTrades           uint64    `json:"total_trades"`
	SuccessfulPredictions uint64    `json:"successful_predictions"`
	Badges                []string  `json:"badges"`
	CreatedAt             uint64    `json:"created_at"`
}
