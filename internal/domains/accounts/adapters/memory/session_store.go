package memory

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

// SessionStore keeps sessions in a go-cache instance; entries expire with the token.
type SessionStore struct {
	cache *cache.Cache
	now   func() time.Time
}

// SessionOption customizes the in-memory session store.
type SessionOption func(*SessionStore)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSessionStore(opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		cache: cache.New(1*time.Hour, 10*time.Minute),
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	s.cache.Set(session.Token, session, ttl)
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	item, ok := s.cache.Get(strings.TrimSpace(token))
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	session, ok := item.(domain.Session)
	if !ok || session.Expired(s.now()) {
		return nil, ports.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.cache.Delete(strings.TrimSpace(token))
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
