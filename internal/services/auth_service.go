package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Login challenges expire after this long.
const challengeTTL = 5 * time.Minute

// AuthService issues and consumes single-use login challenges. Wallets sign
// the challenge message; the handler verifies the signature and trades the
// nonce for a JWT. The registry is in-memory — a restart simply invalidates
// outstanding challenges.
type AuthService struct {
	mu         sync.Mutex
	challenges map[string]time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService() *AuthService {
	return &AuthService{
		challenges: make(map[string]time.Time),
	}
}

// IssueChallenge creates a nonce and returns it with the message the wallet
// must sign.
func (s *AuthService) IssueChallenge() (nonce, message string) {
	nonce = uuid.NewString()

	s.mu.Lock()
	s.challenges[nonce] = time.Now().Add(challengeTTL)
	s.mu.Unlock()

	return nonce, s.ChallengeMessage(nonce)
}

// ChallengeMessage returns the exact text a wallet signs for a nonce.
func (s *AuthService) ChallengeMessage(nonce string) string {
	return fmt.Sprintf("Sign this message to authenticate with Forecast Market: %s", nonce)
}

// ConsumeChallenge invalidates a nonce, reporting whether it was outstanding
// and unexpired. Each nonce authenticates at most one login.
func (s *AuthService) ConsumeChallenge(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.challenges[nonce]
	if !ok {
		return false
	}
	delete(s.challenges, nonce)

	return time.Now().Before(expiry)
}
