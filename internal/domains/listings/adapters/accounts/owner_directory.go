package accounts

import (
	"context"
	"errors"

	accountdomain "github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

var _ ports.OwnerDirectory = (*OwnerDirectory)(nil)

// OwnerDirectory resolves listing owners from the accounts repository.
type OwnerDirectory struct {
	accounts accountports.Repository
}

// NewOwnerDirectory wraps the accounts repository.
func NewOwnerDirectory(accounts accountports.Repository) *OwnerDirectory {
	return &OwnerDirectory{accounts: accounts}
}

// Owner returns the summary of an account; unknown ids yield ErrOwnerNotFound.
func (d *OwnerDirectory) Owner(ctx context.Context, accountID int64) (domain.Owner, error) {
	account, err := d.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accountports.ErrNotFound) {
			return domain.Owner{}, ports.ErrOwnerNotFound
		}
		return domain.Owner{}, err
	}
	return domain.Owner{
		ID:       account.ID,
		Name:     account.Name,
		NGO:      account.Type == accountdomain.TypeNGO,
		Verified: account.Verified,
		Staff:    account.Staff,
	}, nil
}
