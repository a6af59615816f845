package ports

import (
	"context"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations required by the listings bounded context.
type WorkflowOrchestrator interface {
	SubmitListing(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error)
}
