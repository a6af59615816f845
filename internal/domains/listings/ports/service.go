package ports

import (
	"context"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
)

// Service defines the listings use cases exposed to adapters (inbound/driving port).
type Service interface {
	Submit(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error)
	Update(ctx context.Context, input listingtypes.UpdateInput) (*listingtypes.ListingProjection, error)
	ChangeAdoptionStatus(ctx context.Context, input listingtypes.ChangeAdoptionStatusInput) (*listingtypes.ListingProjection, error)
	Moderate(ctx context.Context, input listingtypes.ModerateInput) (*listingtypes.ListingProjection, error)
	Search(ctx context.Context, input listingtypes.SearchInput) (*listingtypes.SearchResult, error)
	GetByID(ctx context.Context, id int64) (*listingtypes.ListingProjection, error)
	ListByOwner(ctx context.Context, ownerID int64) (*listingtypes.OwnerListings, error)
	Featured(ctx context.Context) (*listingtypes.Featured, error)
}
