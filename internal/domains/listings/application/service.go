package application

import (
	"context"
	"errors"
	"strings"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

// Service orchestrates the listings bounded context use cases.
type Service struct {
	repo        ports.Repository
	owners      ports.OwnerDirectory
	idempotency ports.IdempotencyStore
	publisher   ports.EventPublisher
}

// Option customizes the service.
type Option func(*Service)

// WithIdempotencyStore enables replay of submissions carrying an idempotency key.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

// WithEventPublisher forwards domain events after each successful write.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// NewService wires the listings service with its dependencies.
func NewService(repo ports.Repository, owners ports.OwnerDirectory, opts ...Option) *Service {
	s := &Service{repo: repo, owners: owners}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit publishes a new listing. The moderation status follows the owner's
// verification; a repeated idempotency key replays the original listing.
func (s *Service) Submit(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	owner, err := s.owners.Owner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(input.IdempotencyKey)
	useIdempotency := key != "" && s.idempotency != nil
	var hash string
	if useIdempotency {
		if hash, err = FingerprintSubmission(input); err != nil {
			return nil, err
		}
		existing, err := s.idempotency.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if existing.RequestHash != hash {
				return nil, ports.ErrIdempotencyConflict
			}
			return s.repo.GetByID(ctx, existing.ListingID)
		}
	}

	listing, err := domain.NewListing(owner, toDetails(input.Details))
	if err != nil {
		return nil, mapError(err)
	}
	events := listing.Events()
	saved, err := s.repo.Save(ctx, listing)
	if err != nil {
		return nil, mapError(err)
	}
	if useIdempotency {
		record, err := s.idempotency.Save(ctx, ports.IdempotencyRecord{Key: key, RequestHash: hash, ListingID: saved.Entity.ID})
		if err != nil {
			if errors.Is(err, ports.ErrIdempotencyConflict) && record != nil && record.RequestHash == hash {
				return s.repo.GetByID(ctx, record.ListingID)
			}
			return nil, err
		}
	}
	s.publish(ctx, domain.StampListingID(events, saved.Entity.ID))
	return saved, nil
}

// Update replaces the details of a listing owned by the caller.
func (s *Service) Update(ctx context.Context, input listingtypes.UpdateInput) (*listingtypes.ListingProjection, error) {
	listing, err := s.ownedListing(ctx, input.OwnerID, input.ListingID)
	if err != nil {
		return nil, err
	}
	owner, err := s.owners.Owner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	listing.Owner = owner
	if err := listing.Update(toDetails(input.Details)); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, listing)
}

// ChangeAdoptionStatus lets the owner mark a listing available, in process or adopted.
func (s *Service) ChangeAdoptionStatus(ctx context.Context, input listingtypes.ChangeAdoptionStatusInput) (*listingtypes.ListingProjection, error) {
	status, err := domain.ParseAdoptionStatus(input.Status)
	if err != nil {
		return nil, mapError(err)
	}
	listing, err := s.ownedListing(ctx, input.OwnerID, input.ListingID)
	if err != nil {
		return nil, err
	}
	if err := listing.ChangeAdoptionStatus(status); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, listing)
}

// Moderate records a staff approval or rejection.
func (s *Service) Moderate(ctx context.Context, input listingtypes.ModerateInput) (*listingtypes.ListingProjection, error) {
	staff, err := s.owners.Owner(ctx, input.StaffID)
	if err != nil {
		if errors.Is(err, ports.ErrOwnerNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if !staff.Staff {
		return nil, ErrForbidden
	}
	current, err := s.repo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	listing := current.Entity
	if input.Approve {
		err = listing.Approve()
	} else {
		err = listing.Reject(input.Reason)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, listing)
}

// Search pages through the public catalog, newest first.
func (s *Service) Search(ctx context.Context, input listingtypes.SearchInput) (*listingtypes.SearchResult, error) {
	criteria, err := catalogCriteria(input)
	if err != nil {
		return nil, mapError(err)
	}
	items, total, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &listingtypes.SearchResult{
		Items:    items,
		Total:    total,
		Page:     criteria.Offset/SearchPageSize + 1,
		PageSize: SearchPageSize,
		Pages:    pageCount(total, SearchPageSize),
	}, nil
}

// GetByID loads a single listing.
func (s *Service) GetByID(ctx context.Context, id int64) (*listingtypes.ListingProjection, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByOwner returns every listing of an owner together with its counters.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) (*listingtypes.OwnerListings, error) {
	items, _, err := s.repo.Search(ctx, ports.Criteria{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.Summarize(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &listingtypes.OwnerListings{Items: items, Summary: summary}, nil
}

// Featured returns the newest visible listings and catalog counters for the home page.
func (s *Service) Featured(ctx context.Context) (*listingtypes.Featured, error) {
	items, _, err := s.repo.Search(ctx, ports.Criteria{
		Moderation: []domain.ModerationStatus{domain.ModerationApproved},
		Adoption:   []domain.AdoptionStatus{domain.AdoptionAvailable},
		Limit:      FeaturedLimit,
	})
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.Summarize(ctx, 0)
	if err != nil {
		return nil, err
	}
	return &listingtypes.Featured{Items: items, Summary: summary}, nil
}

// ownedListing hides listings of other owners behind ErrNotFound.
func (s *Service) ownedListing(ctx context.Context, ownerID, listingID int64) (*domain.Listing, error) {
	current, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if current.Entity.OwnerID != ownerID {
		return nil, ports.ErrNotFound
	}
	return current.Entity, nil
}

func (s *Service) save(ctx context.Context, listing *domain.Listing) (*listingtypes.ListingProjection, error) {
	events := listing.Events()
	saved, err := s.repo.Save(ctx, listing)
	if err != nil {
		return nil, mapError(err)
	}
	s.publish(ctx, domain.StampListingID(events, saved.Entity.ID))
	return saved, nil
}

// publish is best effort; the publisher adapter logs its own failures.
func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
}

func toDetails(input listingtypes.DetailsInput) domain.Details {
	return domain.Details{
		Name:        input.Name,
		Species:     domain.Species(input.Species),
		Size:        domain.Size(input.Size),
		Sex:         domain.Sex(input.Sex),
		AgeMonths:   input.AgeMonths,
		Description: input.Description,
		History:     input.History,
		HealthInfo:  input.HealthInfo,
		City:        input.City,
		Region:      input.Region,
		PhotoURLs:   append([]string{}, input.PhotoURLs...),
	}
}

var _ ports.Service = (*Service)(nil)
