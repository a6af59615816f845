package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
)

// ErrPetUnavailable is returned when the pet does not exist or is not open for adoption.
var ErrPetUnavailable = errors.New("pet is not available for adoption")

// PetCatalog resolves the listing targeted by an application.
type PetCatalog interface {
	Pet(ctx context.Context, id int64) (domain.Pet, error)
}
