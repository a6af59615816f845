package types

import (
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/shared/projection"
)

// ListingProjection transports a listing together with its persistence metadata.
type ListingProjection = projection.Projection[*domain.Listing]

// SearchResult is one page of the public catalog.
type SearchResult struct {
	Items    []*ListingProjection
	Total    int64
	Page     int
	PageSize int
	Pages    int
}

// OwnerListings is the owner's dashboard: every listing plus counters.
type OwnerListings struct {
	Items   []*ListingProjection
	Summary domain.Summary
}

// Featured feeds the home page.
type Featured struct {
	Items   []*ListingProjection
	Summary domain.Summary
}
