package services

import (
	"unicode/utf8"

	"forecast-market/internal/models"
)

// AddComment appends a comment and returns its id. Content must be between 1
// and 500 characters (runes, not bytes).
//
// The market id is deliberately not checked against the market store, so
// comments on unknown markets are accepted; they simply never show up until
// a market with that id exists.
func (s *ExchangeService) AddComment(marketID uint64, content string, author models.Principal) (uint64, error) {
	if content == "" {
		return 0, &ValidationError{Field: "content", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(content) > maxCommentChars {
		return 0, &ValidationError{Field: "content", Reason: "must be at most 500 characters"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCommentID
	s.nextCommentID++

	s.comments = append(s.comments, models.MarketComment{
		ID:        id,
		MarketID:  marketID,
		Author:    author,
		Content:   content,
		Timestamp: s.now(),
	})

	return id, nil
}

// MarketComments returns all comments for a market in append order.
func (s *ExchangeService) MarketComments(marketID uint64) []models.MarketComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MarketComment
	for _, c := range s.comments {
		if c.MarketID == marketID {
			out = append(out, c)
		}
	}
	return out
}
