package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid application input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidExperience) ||
		errors.Is(err, domain.ErrInvalidHousing) ||
		errors.Is(err, domain.ErrInvalidOtherPets) ||
		errors.Is(err, domain.ErrInvalidAvailableTime) ||
		errors.Is(err, domain.ErrEmptyMotivation) ||
		errors.Is(err, domain.ErrEmptyReferral) ||
		errors.Is(err, domain.ErrInvalidContactPhone) ||
		errors.Is(err, domain.ErrOwnListing) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
