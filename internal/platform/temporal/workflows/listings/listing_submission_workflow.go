package listings

import (
	"go.temporal.io/sdk/workflow"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/platform/temporal/sequences"
)

const (
	// ListingSubmissionWorkflowName is the public identifier for registering the workflow.
	ListingSubmissionWorkflowName = "listings.workflows.Submission"
	// ListingSubmissionTaskQueue is the queue consumed by the worker processing listing workflows.
	ListingSubmissionTaskQueue = "LISTING_SUBMISSION"
)

// ListingSubmissionWorkflowInput captures the payload required to publish a listing.
type ListingSubmissionWorkflowInput struct {
	Command listingtypes.SubmitInput
	TraceID string
}

// ListingSubmissionWorkflow orchestrates the activities needed to publish a listing.
func ListingSubmissionWorkflow(ctx workflow.Context, input ListingSubmissionWorkflowInput) (*listingtypes.ListingProjection, error) {
	logger := workflow.GetLogger(ctx)
	ownerID := input.Command.OwnerID
	logger.Info("ListingSubmissionWorkflow started", withTraceID(input.TraceID, "ownerId", ownerID)...)
	saved, err := sequences.RunListingSubmissionSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ListingSubmissionWorkflow failed", withTraceID(input.TraceID, "ownerId", ownerID, "error", err)...)
		return nil, err
	}
	if saved != nil && saved.Entity != nil {
		logger.Info("ListingSubmissionWorkflow completed", withTraceID(input.TraceID, "listingId", saved.Entity.ID)...)
	} else {
		logger.Info("ListingSubmissionWorkflow completed", withTraceID(input.TraceID)...)
	}
	return saved, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
