package models

// AIInsight is the most recent generated analysis for a market. At most one
// is cached per market; a refresh replaces it wholesale.
//
// PredictionLean: true leans YES, false leans NO, nil means no lean.
type AIInsight struct {
	MarketID       uint64   `json:"market_id"`
	Summary        string   `json:"summary"`
	Confidence     float64  `json:"confidence"`
	Risks          []string `json:"risks"`
	PredictionLean *bool    `json:"prediction_lean,omitempty"`
	GeneratedAt    uint64   `json:"generated_at"`
}
