package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
)

var (
	// ErrInvalidInput signals a malformed chat request.
	ErrInvalidInput = errors.New("invalid chat input")
	// ErrForbidden signals the caller lacks the staff role.
	ErrForbidden = errors.New("staff role required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyMessage) ||
		errors.Is(err, domain.ErrSessionIDTooLong) ||
		errors.Is(err, domain.ErrMissingInteraction) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
