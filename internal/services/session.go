package services

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const sessionTTL = 24 * time.Hour

// sessionEntry binds a token to a user id with an explicit expiry.
type sessionEntry struct {
	UserID    string
	ExpiresAt time.Time
}

// SessionService holds server-side login sessions in a bounded LRU keyed by
// an opaque token. The cookie only carries the token; expiry and revocation
// happen here, so memory cannot grow without bound and logout invalidates
// the session immediately.
type SessionService struct {
	tokens *lru.Cache[string, sessionEntry]
	ttl    time.Duration
}

var sessionService *SessionService

// GetSessionService returns the singleton session service.
func GetSessionService() *SessionService {
	if sessionService == nil {
		l, err := lru.New[string, sessionEntry](4096)
		if err != nil {
			log.Fatalf("Failed to create session cache: %v", err)
		}
		sessionService = &SessionService{
			tokens: l,
			ttl:    sessionTTL,
		}
	}
	return sessionService
}

// Create issues a fresh token for the user.
func (s *SessionService) Create(userID string) string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate session token: %v", err)
	}
	token := hex.EncodeToString(buf)
	s.tokens.Add(token, sessionEntry{
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	})
	return token
}

// Resolve returns the user id for a token, if the session is still live.
func (s *SessionService) Resolve(token string) (string, bool) {
	entry, ok := s.tokens.Get(token)
	if !ok {
		return "", false
	}
	if time.Now().After(entry.ExpiresAt) {
		s.tokens.Remove(token)
		return "", false
	}
	return entry.UserID, true
}

// Destroy revokes a token.
func (s *SessionService) Destroy(token string) {
	s.tokens.Remove(token)
}
