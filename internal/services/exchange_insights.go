package services

import (
	"context"

	"forecast-market/internal/models"
)

// Cached insights younger than this many seconds are served without
// regenerating.
const insightMaxAgeSeconds uint64 = 3600

// AIInsight returns the insight for a market, serving the cached copy while
// it is younger than one hour and regenerating otherwise. Returns false
// without caching anything when the market does not exist.
//
// Generation runs outside the lock: the remote strategy can block on the
// network and every other operation must be free to run meanwhile. The cache
// write on return is last-writer-wins; concurrent refreshes of the same
// market are allowed to race.
func (s *ExchangeService) AIInsight(ctx context.Context, marketID uint64) (models.AIInsight, bool) {
	s.mu.Lock()
	if cached, ok := s.insights[marketID]; ok {
		if s.now() < cached.GeneratedAt+insightMaxAgeSeconds {
			s.mu.Unlock()
			return cached, true
		}
	}

	m, ok := s.markets[marketID]
	if !ok {
		s.mu.Unlock()
		return models.AIInsight{}, false
	}
	market := *m
	s.mu.Unlock()

	insight := s.generator.Generate(ctx, market)
	insight.MarketID = marketID

	s.mu.Lock()
	s.insights[marketID] = insight
	s.mu.Unlock()

	return insight, true
}
