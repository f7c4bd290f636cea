package services

import (
	"sync"
	"time"

	"forecast-market/internal/models"
)

const (
	// Seed values assigned to every newly created market.
	initialSideShares    uint64 = 500
	initialSideLiquidity uint64 = 5000

	// Trading fee collected into the treasury, in percent of the amount.
	tradeFeePercent uint64 = 2

	// XP granted per trade is amount / xpDivisor.
	xpDivisor uint64 = 10

	maxCommentChars = 500
	leaderboardSize = 20
)

// ExchangeService owns the entire market state: markets, trade log, user
// profiles, comments, insight cache, treasury and the id counters. All
// exposed operations take the single mutex, so every operation is observed
// atomically; the only code path that runs outside the lock is insight
// generation (see exchange_insights.go).
type ExchangeService struct {
	mu sync.Mutex

	markets  map[uint64]*models.Market
	trades   []models.Trade
	profiles map[models.Principal]*models.UserProfile
	comments []models.MarketComment
	insights map[uint64]models.AIInsight

	nextMarketID  uint64
	nextTradeID   uint64
	nextCommentID uint64
	treasury      uint64

	generator InsightGenerator
	now       func() uint64
}

// NewExchangeService creates an empty exchange. Call Seed or RestoreSnapshot
// before serving traffic.
func NewExchangeService(generator InsightGenerator) *ExchangeService {
	return &ExchangeService{
		markets:       make(map[uint64]*models.Market),
		profiles:      make(map[models.Principal]*models.UserProfile),
		insights:      make(map[uint64]models.AIInsight),
		nextMarketID:  1,
		nextTradeID:   1,
		nextCommentID: 1,
		generator:     generator,
		now:           unixNow,
	}
}

func unixNow() uint64 {
	return uint64(time.Now().Unix())
}

// Markets returns a snapshot of all markets. Order is unspecified (map
// iteration); callers must not rely on it.
func (s *ExchangeService) Markets() []models.Market {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Market, 0, len(s.markets))
	for _, m := range s.markets {
		out = append(out, *m)
	}
	return out
}

// Market returns the market with the given id.
func (s *ExchangeService) Market(id uint64) (models.Market, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.markets[id]
	if !ok {
		return models.Market{}, false
	}
	return *m, true
}

// CreateMarket registers a new market in pending_validation status and
// returns its id. Title and description must be non-empty. The id counter is
// only advanced after validation passes, so failed calls never consume ids.
func (s *ExchangeService) CreateMarket(title, description, category string, closeDate uint64, creator models.Principal) (uint64, error) {
	if title == "" {
		return 0, &ValidationError{Field: "title", Reason: "cannot be empty"}
	}
	if description == "" {
		return 0, &ValidationError{Field: "description", Reason: "cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMarketID
	s.nextMarketID++

	s.markets[id] = &models.Market{
		ID:           id,
		Title:        title,
		Description:  description,
		Category:     category,
		Creator:      creator,
		CloseDate:    closeDate,
		Status:       models.StatusPendingValidation,
		YesShares:    initialSideShares,
		NoShares:     initialSideShares,
		YesLiquidity: initialSideLiquidity,
		NoLiquidity:  initialSideLiquidity,
		TotalVolume:  0,
		CreatedAt:    s.now(),
	}

	return id, nil
}

// TreasuryBalance returns the accumulated trading fees.
func (s *ExchangeService) TreasuryBalance() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.treasury
}
