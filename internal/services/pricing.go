package services

// Pricing constants. Prices are expressed in millis: 500 = 0.50 probability,
// clamped to [50, 950] by the impact cap.
const (
	baseLiquidity  uint64 = 1000
	midPrice       uint64 = 500
	maxPriceImpact uint64 = 450
)

// CalculatePrice computes the execution price for buying `amount` shares on
// one side of a market, given the pre-trade share counts.
//
// This is a linear-impact approximation, not a scoring-rule market maker:
// impact = amount*1000 / (1000 + sharesOnRequestedSide), capped at 450.
// Repeated small buys do not sum to the impact of one large buy, and the
// function is not arbitrage-free. All arithmetic is unsigned with truncating
// division; callers depend on the exact truncation behavior.
func CalculatePrice(yesShares, noShares uint64, buyYes bool, amount uint64) uint64 {
	if buyYes {
		impact := amount * 1000 / (baseLiquidity + yesShares)
		if impact > maxPriceImpact {
			impact = maxPriceImpact
		}
		return midPrice + impact
	}

	impact := amount * 1000 / (baseLiquidity + noShares)
	if impact > maxPriceImpact {
		impact = maxPriceImpact
	}
	return midPrice - impact
}
