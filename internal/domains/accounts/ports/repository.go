package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository persists accounts. Emails are unique.
type Repository interface {
	// Create assigns an id to the account; ErrEmailTaken when the email exists.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}
