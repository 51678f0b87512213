package mem

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type ResetTokenStore interface {
	Set(token string, accountEmail string, ttl time.Duration)

	// Consume returns the email bound to token and removes it (single use).
	// Returns "" if missing or expired.
	Consume(token string) string

	Peek(token string) (string, bool)
}

type ResetTokens struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		cache: gocache.New(time.Hour, 10*time.Minute),
	}
}

func (s *ResetTokens) Set(token string, accountEmail string, ttl time.Duration) {
	s.cache.Set(token, accountEmail, ttl)
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(token)
	if !ok {
		return ""
	}
	s.cache.Delete(token)
	return v.(string)
}

func (s *ResetTokens) Peek(token string) (string, bool) {
	v, ok := s.cache.Get(token)
	if !ok {
		return "", false
	}
	return v.(string), true
}
