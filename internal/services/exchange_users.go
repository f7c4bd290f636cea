package services

import (
	"sort"

	"forecast-market/internal/models"
)

// UserProfile returns the profile for a principal, if one exists. Profiles
// only come into existence on a principal's first trade.
func (s *ExchangeService) UserProfile(principal models.Principal) (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[principal]
	if !ok {
		return models.UserProfile{}, false
	}
	return *p, true
}

// Leaderboard returns the top 20 profiles by XP, descending. Tie order is
// arbitrary; callers must not depend on it.
func (s *ExchangeService) Leaderboard() []models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		users = append(users, *p)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].XP > users[j].XP
	})

	if len(users) > leaderboardSize {
		users = users[:leaderboardSize]
	}
	return users
}
