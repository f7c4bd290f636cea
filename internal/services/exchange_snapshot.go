package services

import "forecast-market/internal/models"

// Snapshot is the full exported state of the exchange: every store plus the
// counters and treasury. It is what the persistence hooks carry across
// process restarts.
type Snapshot struct {
	Markets  []models.Market
	Trades   []models.Trade
	Profiles []models.UserProfile
	Comments []models.MarketComment
	Insights []models.AIInsight

	NextMarketID  uint64
	NextTradeID   uint64
	NextCommentID uint64
	Treasury      uint64
}

// ExportSnapshot copies the entire exchange state.
func (s *ExchangeService) ExportSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Markets:       make([]models.Market, 0, len(s.markets)),
		Trades:        make([]models.Trade, len(s.trades)),
		Profiles:      make([]models.UserProfile, 0, len(s.profiles)),
		Comments:      make([]models.MarketComment, len(s.comments)),
		Insights:      make([]models.AIInsight, 0, len(s.insights)),
		NextMarketID:  s.nextMarketID,
		NextTradeID:   s.nextTradeID,
		NextCommentID: s.nextCommentID,
		Treasury:      s.treasury,
	}

	for _, m := range s.markets {
		snap.Markets = append(snap.Markets, *m)
	}
	copy(snap.Trades, s.trades)
	for _, p := range s.profiles {
		snap.Profiles = append(snap.Profiles, *p)
	}
	copy(snap.Comments, s.comments)
	for _, insight := range s.insights {
		snap.Insights = append(snap.Insights, insight)
	}

	return snap
}

// RestoreSnapshot replaces the entire exchange state with the snapshot.
// Meant to run once at boot, before the exchange serves traffic.
func (s *ExchangeService) RestoreSnapshot(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markets = make(map[uint64]*models.Market, len(snap.Markets))
	for i := range snap.Markets {
		m := snap.Markets[i]
		s.markets[m.ID] = &m
	}

	s.trades = make([]models.Trade, len(snap.Trades))
	copy(s.trades, snap.Trades)

	s.profiles = make(map[models.Principal]*models.UserProfile, len(snap.Profiles))
	for i := range snap.Profiles {
		p := snap.Profiles[i]
		s.profiles[p.Principal] = &p
	}

	s.comments = make([]models.MarketComment, len(snap.Comments))
	copy(s.comments, snap.Comments)

	s.insights = make(map[uint64]models.AIInsight, len(snap.Insights))
	for _, insight := range snap.Insights {
		s.insights[insight.MarketID] = insight
	}

	s.nextMarketID = snap.NextMarketID
	s.nextTradeID = snap.NextTradeID
	s.nextCommentID = snap.NextCommentID
	s.treasury = snap.Treasury
}
