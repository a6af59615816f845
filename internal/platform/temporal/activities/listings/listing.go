package listings

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	listingapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

const (
	// PersistListingActivityName stores a submitted listing without publishing events.
	PersistListingActivityName = "listings.activities.PersistListing"
	// AnnounceListingActivityName publishes the submission event for a stored listing.
	AnnounceListingActivityName = "listings.activities.AnnounceListing"
)

// Application error types that must not be retried.
const (
	ErrTypeInvalidListing      = "InvalidListing"
	ErrTypeIdempotencyConflict = "IdempotencyConflict"
	ErrTypeOwnerNotFound       = "OwnerNotFound"
)

// AnnounceInput identifies the listing to announce.
type AnnounceInput struct {
	ListingID int64
}

// Activities groups activities that operate on the listings bounded context.
type Activities struct {
	persistService listingports.Service
	repo           listingports.Repository
	publisher      listingports.EventPublisher
}

// NewActivities wires the listings collaborators into the Temporal activities bundle.
// persistService should be constructed without an event publisher to avoid duplicate announcements.
func NewActivities(persistService listingports.Service, repo listingports.Repository, publisher listingports.EventPublisher) *Activities {
	return &Activities{
		persistService: persistService,
		repo:           repo,
		publisher:      publisher,
	}
}

// PersistListing stores a new listing and returns its projection.
func (a *Activities) PersistListing(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.persistService == nil {
		logger.Error("listing persist activity not initialized", "ownerId", input.OwnerID)
		return nil, errors.New("listing persist activity not initialized")
	}
	logger.Info("PersistListing activity started", "ownerId", input.OwnerID)
	saved, err := a.persistService.Submit(ctx, input)
	if err != nil {
		logger.Error("PersistListing activity failed", "ownerId", input.OwnerID, "error", err)
		return nil, nonRetryable(err)
	}
	logger.Info("PersistListing activity completed", "listingId", saved.Entity.ID, "moderation", string(saved.Entity.Moderation))
	return saved, nil
}

// AnnounceListing loads a stored listing and publishes its submission event.
// A heartbeat marks completion so a retried attempt does not announce twice.
func (a *Activities) AnnounceListing(ctx context.Context, input AnnounceInput) error {
	logger := activity.GetLogger(ctx)
	if a == nil {
		logger.Error("listing announce activity not initialized", "listingId", input.ListingID)
		return errors.New("listing announce activity not initialized")
	}
	if a.publisher == nil {
		logger.Info("event publisher not configured; skipping", "listingId", input.ListingID)
		return nil
	}
	if a.repo == nil {
		logger.Error("listing repository not configured for announce", "listingId", input.ListingID)
		return errors.New("listing repository not configured for announce")
	}

	var hb announceHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("AnnounceListing already completed in prior attempt; skipping", "listingId", input.ListingID)
		return nil
	}

	current, err := a.repo.GetByID(ctx, input.ListingID)
	if err != nil {
		logger.Error("AnnounceListing failed to load listing", "listingId", input.ListingID, "error", err)
		return err
	}
	listing := current.Entity
	event := domain.ListingSubmitted{
		BaseEvent:  domain.BaseEvent{Timestamp: time.Now().UTC()},
		ListingID:  listing.ID,
		OwnerID:    listing.OwnerID,
		Name:       listing.Name,
		Moderation: listing.Moderation,
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		logger.Error("AnnounceListing failed", "listingId", input.ListingID, "error", err)
		return err
	}
	activity.RecordHeartbeat(ctx, announceHeartbeat{Completed: true})
	logger.Info("AnnounceListing activity completed", "listingId", input.ListingID)
	return nil
}

type announceHeartbeat struct {
	Completed bool
}

// nonRetryable marks business failures so Temporal does not retry them.
func nonRetryable(err error) error {
	switch {
	case errors.Is(err, listingapp.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidListing, err)
	case errors.Is(err, listingports.ErrIdempotencyConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeIdempotencyConflict, err)
	case errors.Is(err, listingports.ErrOwnerNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOwnerNotFound, err)
	default:
		return err
	}
}
