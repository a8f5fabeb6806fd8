package oauth

import (
	"sync"
	"time"
)

// CachedCredential is the process-wide token and the instant it stops being
// valid. The zero value means no token has been fetched yet.
type CachedCredential struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

// IsZero reports whether no token has been cached.
func (c CachedCredential) IsZero() bool {
	return c.Token == ""
}

// UsableAt reports whether the token may still be handed out at now, keeping
// margin in reserve before ExpiresAt.
func (c CachedCredential) UsableAt(now time.Time, margin time.Duration) bool {
	return !c.IsZero() && now.Before(c.ExpiresAt.Add(-margin))
}

// credentialStore guards a CachedCredential so readers always observe both
// fields from the same exchange.
type credentialStore struct {
	mu   sync.RWMutex
	cred CachedCredential
}

func (s *credentialStore) load() CachedCredential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred
}

func (s *credentialStore) store(cred CachedCredential) {
	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()
}
