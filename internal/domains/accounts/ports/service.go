package ports

import (
	"context"

	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
)

// Service exposes the accounts use cases to adapters.
type Service interface {
	Register(ctx context.Context, input accounttypes.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, input accounttypes.LoginInput) (*accounttypes.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	UpdateProfile(ctx context.Context, input accounttypes.UpdateProfileInput) (*domain.Account, error)
	SetVerified(ctx context.Context, input accounttypes.SetVerifiedInput) (*domain.Account, error)
	CountAccounts(ctx context.Context) (int64, error)
}
