package services

import (
	"fmt"

	"forecast-market/internal/models"
)

// BuyShares executes a share purchase against an active market.
//
// All validation happens before any state is touched: a rejected trade never
// consumes a trade id and never mutates the market. The execution price is
// computed from the pre-trade share counts; shares, liquidity and volume then
// grow by exactly `amount` (liquidity tracks the committed amount 1:1, it is
// not scaled by price). A 2% fee goes to the treasury and the trader's
// profile is created on first trade.
func (s *ExchangeService) BuyShares(marketID uint64, buyYes bool, amount uint64, trader models.Principal) (models.Trade, error) {
	if amount == 0 {
		return models.Trade{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, ok := s.markets[marketID]
	if !ok {
		return models.Trade{}, ErrMarketNotFound
	}
	if market.Status != models.StatusActive {
		return models.Trade{}, ErrMarketNotActive
	}

	price := CalculatePrice(market.YesShares, market.NoShares, buyYes, amount)

	if buyYes {
		market.YesShares += amount
		market.YesLiquidity += amount
	} else {
		market.NoShares += amount
		market.NoLiquidity += amount
	}
	market.TotalVolume += amount

	s.treasury += amount * tradeFeePercent / 100

	tradeID := s.nextTradeID
	s.nextTradeID++

	trade := models.Trade{
		ID:        tradeID,
		MarketID:  marketID,
		Trader:    trader,
		IsYes:     buyYes,
		Shares:    amount,
		Price:     price,
		Timestamp: s.now(),
	}
	s.trades = append(s.trades, trade)

	profile := s.getOrCreateProfile(trader)
	profile.TotalTrades++
	profile.XP += amount / xpDivisor

	return trade, nil
}

// MarketTrades returns all trades against a market in log (execution) order.
func (s *ExchangeService) MarketTrades(marketID uint64) []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Trade
	for _, t := range s.trades {
		if t.MarketID == marketID {
			out = append(out, t)
		}
	}
	return out
}

// getOrCreateProfile returns the trader's profile, creating it with a
// derived username on first use. Caller must hold the lock.
func (s *ExchangeService) getOrCreateProfile(trader models.Principal) *models.UserProfile {
	if p, ok := s.profiles[trader]; ok {
		return p
	}

	text := string(trader)
	if len(text) > 8 {
		text = text[:8]
	}

	p := &models.UserProfile{
		Principal: trader,
		Username:  fmt.Sprintf("User%s", text),
		Badges:    []string{},
		CreatedAt: s.now(),
	}
	s.profiles[trader] = p
	return p
}
