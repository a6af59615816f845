package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
)

// ErrOwnerNotFound is returned when the acting account does not exist.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerDirectory resolves accounts into the listing owner summary.
type OwnerDirectory interface {
	Owner(ctx context.Context, accountID int64) (domain.Owner, error)
}
