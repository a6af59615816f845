// Package directory resolves assistant users from the accounts store.
package directory

import (
	"context"
	"errors"

	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

var _ ports.UserDirectory = (*AccountsDirectory)(nil)

type AccountsDirectory struct {
	accounts accountports.Repository
}

func NewAccountsDirectory(accounts accountports.Repository) *AccountsDirectory {
	return &AccountsDirectory{accounts: accounts}
}

func (d *AccountsDirectory) User(ctx context.Context, id int64) (domain.User, error) {
	account, err := d.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountports.ErrNotFound) {
			return domain.User{}, ports.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return domain.User{
		ID:     account.ID,
		Name:   account.Name,
		City:   account.City,
		Region: account.Region,
		Staff:  account.Staff,
	}, nil
}
