// Package catalog serves the assistant's pet queries from the listings store.
package catalog

import (
	"context"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
	listingdomain "github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

var _ ports.PetCatalog = (*ListingsCatalog)(nil)

// ListingsCatalog translates pet queries into listing criteria.
type ListingsCatalog struct {
	listings listingports.Repository
}

func NewListingsCatalog(listings listingports.Repository) *ListingsCatalog {
	return &ListingsCatalog{listings: listings}
}

// FindAvailable returns approved and available listings, newest first.
func (c *ListingsCatalog) FindAvailable(ctx context.Context, query ports.PetQuery) ([]domain.PetRecord, error) {
	criteria := listingports.Criteria{
		Moderation:   []listingdomain.ModerationStatus{listingdomain.ModerationApproved},
		Adoption:     []listingdomain.AdoptionStatus{listingdomain.AdoptionAvailable},
		Species:      listingdomain.Species(query.Species),
		Size:         listingdomain.Size(query.Size),
		Sex:          listingdomain.Sex(query.Sex),
		MinAgeMonths: query.MinAgeMonths,
		MaxAgeMonths: query.MaxAgeMonths,
		CityContains: query.CityContains,
		Region:       query.Region,
		Limit:        query.Limit,
	}
	items, _, err := c.listings.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	pets := make([]domain.PetRecord, 0, len(items))
	for _, item := range items {
		pets = append(pets, toPetRecord(item.Entity))
	}
	return pets, nil
}

func toPetRecord(l *listingdomain.Listing) domain.PetRecord {
	return domain.PetRecord{
		ID:            l.ID,
		Name:          l.Name,
		Species:       domain.Species(l.Species),
		SpeciesLabel:  l.Species.Label(),
		Size:          domain.Size(l.Size),
		SizeLabel:     l.Size.Label(),
		Sex:           domain.Sex(l.Sex),
		AgeMonths:     l.AgeMonths,
		City:          l.City,
		Region:        l.Region,
		Approved:      l.Moderation == listingdomain.ModerationApproved,
		Available:     l.Adoption == listingdomain.AdoptionAvailable,
		OwnerVerified: l.Owner.Verified,
	}
}
