package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid listing input")
	// ErrForbidden signals the caller lacks the staff role.
	ErrForbidden = errors.New("staff role required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidSpecies) ||
		errors.Is(err, domain.ErrInvalidSize) ||
		errors.Is(err, domain.ErrInvalidSex) ||
		errors.Is(err, domain.ErrInvalidAge) ||
		errors.Is(err, domain.ErrEmptyDescription) ||
		errors.Is(err, domain.ErrEmptyCity) ||
		errors.Is(err, domain.ErrInvalidRegion) ||
		errors.Is(err, domain.ErrInvalidAdoptionStatus) ||
		errors.Is(err, domain.ErrInvalidModerationState) ||
		errors.Is(err, ErrInvalidAgeBracket) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
