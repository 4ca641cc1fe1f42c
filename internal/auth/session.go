package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

// Sessions holds bearer tokens for signed-in accounts. The tracker is a
// single-user app, but gin serves requests concurrently, so access is locked.
type Sessions struct {
	mu     sync.Mutex
	active map[string]models.Account
}

func NewSessions() *Sessions {
	return &Sessions{active: make(map[string]models.Account)}
}

// Issue creates a fresh bearer token for the account.
func (s *Sessions) Issue(acct models.Account) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.active[token] = acct
	s.mu.Unlock()
	return token
}

// Resolve looks up the account behind a bearer token.
func (s *Sessions) Resolve(token string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.active[token]
	return acct, ok
}

// Revoke ends a session. Unknown tokens are a no-op.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}

// FromBearer strips the "Bearer " scheme from an Authorization header value.
// Returns "" when the header does not carry a bearer token.
func FromBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
