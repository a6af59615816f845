package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	"github.com/Apurer/petadopt-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type storedListing struct {
	listing   domain.Listing
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory listing persistence adapter. When an owner
// directory is configured the owner summary is refreshed on every read.
type Repository struct {
	mu       sync.RWMutex
	listings map[int64]*storedListing
	nextID   int64
	now      func() time.Time
	owners   ports.OwnerDirectory
}

// Option customizes the in-memory repository.
type Option func(*Repository)

// WithOwnerDirectory resolves owner summaries at read time.
func WithOwnerDirectory(owners ports.OwnerDirectory) Option {
	return func(r *Repository) {
		r.owners = owners
	}
}

func NewRepository(opts ...Option) *Repository {
	r := &Repository{listings: map[int64]*storedListing{}, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Save(ctx context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error) {
	if listing == nil {
		return nil, errors.New("listing is nil")
	}
	clone := cloneListing(listing)
	clone.ClearEvents()
	r.mu.Lock()
	now := r.now()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
		r.listings[clone.ID] = &storedListing{listing: clone, createdAt: now, updatedAt: now}
	} else {
		existing, ok := r.listings[clone.ID]
		if !ok {
			r.mu.Unlock()
			return nil, ports.ErrNotFound
		}
		existing.listing = clone
		existing.updatedAt = now
	}
	r.mu.Unlock()
	return r.GetByID(ctx, clone.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Listing], error) {
	r.mu.RLock()
	stored, ok := r.listings[id]
	var snapshot storedListing
	if ok {
		snapshot = *stored
		snapshot.listing = cloneListing(&stored.listing)
	}
	r.mu.RUnlock()
	if !ok {
		return nil, ports.ErrNotFound
	}
	r.enrich(ctx, &snapshot.listing)
	return projection.New(&snapshot.listing, snapshot.createdAt, snapshot.updatedAt), nil
}

func (r *Repository) Search(ctx context.Context, criteria ports.Criteria) ([]*projection.Projection[*domain.Listing], int64, error) {
	r.mu.RLock()
	snapshots := make([]storedListing, 0, len(r.listings))
	for _, stored := range r.listings {
		snapshot := *stored
		snapshot.listing = cloneListing(&stored.listing)
		snapshots = append(snapshots, snapshot)
	}
	r.mu.RUnlock()

	matched := make([]storedListing, 0, len(snapshots))
	for i := range snapshots {
		r.enrich(ctx, &snapshots[i].listing)
		if matches(&snapshots[i].listing, criteria) {
			matched = append(matched, snapshots[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].listing.ID > matched[j].listing.ID
		}
		return matched[i].createdAt.After(matched[j].createdAt)
	})
	total := int64(len(matched))
	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[criteria.Offset:]
		}
	}
	if criteria.Limit > 0 && len(matched) > criteria.Limit {
		matched = matched[:criteria.Limit]
	}
	result := make([]*projection.Projection[*domain.Listing], 0, len(matched))
	for i := range matched {
		result = append(result, projection.New(&matched[i].listing, matched[i].createdAt, matched[i].updatedAt))
	}
	return result, total, nil
}

func (r *Repository) Summarize(_ context.Context, ownerID int64) (domain.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var summary domain.Summary
	for _, stored := range r.listings {
		if ownerID != 0 && stored.listing.OwnerID != ownerID {
			continue
		}
		summary.Add(&stored.listing)
	}
	return summary, nil
}

func (r *Repository) enrich(ctx context.Context, listing *domain.Listing) {
	if r.owners == nil {
		return
	}
	if owner, err := r.owners.Owner(ctx, listing.OwnerID); err == nil {
		listing.Owner = owner
	}
}

func matches(l *domain.Listing, c ports.Criteria) bool {
	if c.OwnerID != 0 && l.OwnerID != c.OwnerID {
		return false
	}
	if len(c.Moderation) > 0 && !containsModeration(c.Moderation, l.Moderation) {
		return false
	}
	if len(c.Adoption) > 0 && !containsAdoption(c.Adoption, l.Adoption) {
		return false
	}
	if c.Species != "" && l.Species != c.Species {
		return false
	}
	if c.Size != "" && l.Size != c.Size {
		return false
	}
	if c.Sex != "" && l.Sex != c.Sex {
		return false
	}
	if c.MinAgeMonths != nil && l.AgeMonths < *c.MinAgeMonths {
		return false
	}
	if c.MaxAgeMonths != nil && l.AgeMonths > *c.MaxAgeMonths {
		return false
	}
	if c.CityContains != "" && !strings.Contains(strings.ToLower(l.City), strings.ToLower(c.CityContains)) {
		return false
	}
	if c.Region != "" && l.Region != c.Region {
		return false
	}
	if c.VerifiedOwnersOnly && !l.Owner.Verified {
		return false
	}
	return true
}

func containsModeration(list []domain.ModerationStatus, v domain.ModerationStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsAdoption(list []domain.AdoptionStatus, v domain.AdoptionStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func cloneListing(l *domain.Listing) domain.Listing {
	clone := *l
	clone.PhotoURLs = append([]string(nil), l.PhotoURLs...)
	return clone
}
