package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// DefaultKeyRetention bounds how long a retried submission can replay its listing.
const DefaultKeyRetention = 24 * time.Hour

// IdempotencyStore remembers submission keys in a go-cache instance.
type IdempotencyStore struct {
	mu   sync.Mutex
	keys *cache.Cache
	now  func() time.Time
}

// NewIdempotencyStore keeps keys for DefaultKeyRetention.
func NewIdempotencyStore() *IdempotencyStore {
	return NewIdempotencyStoreWithRetention(DefaultKeyRetention)
}

// NewIdempotencyStoreWithRetention keeps keys for retention; zero or less never expires them.
func NewIdempotencyStoreWithRetention(retention time.Duration) *IdempotencyStore {
	expiration, cleanup := retention, retention
	if retention <= 0 {
		expiration, cleanup = cache.NoExpiration, 0
	}
	return &IdempotencyStore{
		keys: cache.New(expiration, cleanup),
		now:  time.Now,
	}
}

// WithClock sets the timestamps recorded on new keys.
func (s *IdempotencyStore) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *IdempotencyStore) Get(_ context.Context, key string) (*ports.IdempotencyRecord, error) {
	value, ok := s.keys.Get(key)
	if !ok {
		return nil, nil
	}
	record := value.(ports.IdempotencyRecord)
	return &record, nil
}

// Save stores a new key. A known key is returned unchanged and is a conflict
// unless it names the same payload and listing.
func (s *IdempotencyStore) Save(_ context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.keys.Get(record.Key); ok {
		existing := value.(ports.IdempotencyRecord)
		if existing.RequestHash == record.RequestHash && existing.ListingID == record.ListingID {
			return &existing, nil
		}
		return &existing, ports.ErrIdempotencyConflict
	}

	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt
	s.keys.Set(record.Key, record, cache.DefaultExpiration)
	return &record, nil
}
