package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrAuthentication wraps credential and token failures.
	ErrAuthentication = errors.New("authentication failed")
	// ErrForbidden signals the caller lacks the staff role.
	ErrForbidden = errors.New("staff role required")
	// ErrConflict signals a uniqueness violation.
	ErrConflict = errors.New("account conflict")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidRegion) ||
		errors.Is(err, domain.ErrInvalidAccountType) ||
		errors.Is(err, domain.ErrWeakPassword) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrEmailTaken) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
