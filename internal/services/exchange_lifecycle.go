package services

import (
	"log"

	"forecast-market/internal/models"
)

// Lifecycle transitions. These are the only ways a market changes status:
// pending_validation -> active (ApproveMarket), active -> closed
// (CloseMarket or CloseExpired), closed -> resolved (ResolveMarket). Any
// other transition is rejected, and resolution assigns the outcome exactly
// once. Resolution does not score predictions or distribute winnings.

// ApproveMarket moves a pending market to active.
func (s *ExchangeService) ApproveMarket(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.markets[id]
	if !ok {
		return ErrMarketNotFound
	}
	if m.Status != models.StatusPendingValidation {
		return ErrInvalidTransition
	}

	m.Status = models.StatusActive
	return nil
}

// CloseMarket explicitly closes an active market, stopping further trades.
func (s *ExchangeService) CloseMarket(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.markets[id]
	if !ok {
		return ErrMarketNotFound
	}
	if m.Status != models.StatusActive {
		return ErrInvalidTransition
	}

	m.Status = models.StatusClosed
	return nil
}

// ResolveMarket assigns the final outcome to a closed market.
func (s *ExchangeService) ResolveMarket(id uint64, outcome bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.markets[id]
	if !ok {
		return ErrMarketNotFound
	}
	if m.Status == models.StatusResolved {
		return ErrAlreadyResolved
	}
	if m.Status != models.StatusClosed {
		return ErrInvalidTransition
	}

	m.Status = models.StatusResolved
	m.ResolvedOutcome = &outcome
	return nil
}

// CloseExpired closes every active market whose close date has passed and
// returns the number of markets closed.
func (s *ExchangeService) CloseExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	closed := 0
	for _, m := range s.markets {
		if m.Status == models.StatusActive && m.CloseDate <= now {
			m.Status = models.StatusClosed
			closed++
			log.Printf("Market %d closed: close date %d reached", m.ID, m.CloseDate)
		}
	}
	return closed
}
