package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	listingactivities "github.com/Apurer/petadopt-api/internal/platform/temporal/activities/listings"
)

// RunListingSubmissionSequence persists a listing and then announces it.
func RunListingSubmissionSequence(ctx workflow.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("listing submission sequence started", "ownerId", input.OwnerID)
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	announceOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var saved listingtypes.ListingProjection
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), listingactivities.PersistListingActivityName, input).Get(ctx, &saved)
	if err != nil {
		logger.Error("listing submission sequence failed", "ownerId", input.OwnerID, "error", err)
		return nil, err
	}
	if saved.Entity == nil {
		return &saved, nil
	}
	logger.Info("listing submission sequence persisted", "listingId", saved.Entity.ID)

	announce := listingactivities.AnnounceInput{ListingID: saved.Entity.ID}
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, announceOptions), listingactivities.AnnounceListingActivityName, announce).Get(ctx, nil); err != nil {
		// The listing is stored; a lost announcement only delays the owner notification.
		logger.Warn("listing submission sequence announce failed", "listingId", saved.Entity.ID, "error", err)
	}
	return &saved, nil
}
