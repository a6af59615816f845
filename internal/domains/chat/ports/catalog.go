package ports

import (
	"context"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
)

// PetQuery narrows the approved and available pets. Zero values do not constrain.
type PetQuery struct {
	Species      domain.Species
	Size         domain.Size
	Sex          domain.Sex
	MinAgeMonths *int
	MaxAgeMonths *int
	CityContains string
	Region       string
	Limit        int
}

// PetCatalog queries pets open for adoption, newest first.
type PetCatalog interface {
	FindAvailable(ctx context.Context, query PetQuery) ([]domain.PetRecord, error)
}
