// Package listings adapts the listings bounded context to the adoptions PetCatalog port.
package listings

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

// PetCatalog reads listings through the listings repository.
type PetCatalog struct {
	listings listingports.Repository
}

func NewPetCatalog(listings listingports.Repository) *PetCatalog {
	return &PetCatalog{listings: listings}
}

// Pet resolves a listing; unknown listings are reported as unavailable.
func (c *PetCatalog) Pet(ctx context.Context, id int64) (domain.Pet, error) {
	found, err := c.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingports.ErrNotFound) {
			return domain.Pet{}, ports.ErrPetUnavailable
		}
		return domain.Pet{}, err
	}
	listing := found.Entity
	return domain.Pet{
		ID:      listing.ID,
		OwnerID: listing.OwnerID,
		Name:    listing.Name,
		Listed:  listing.Listed(),
	}, nil
}

var _ ports.PetCatalog = (*PetCatalog)(nil)
