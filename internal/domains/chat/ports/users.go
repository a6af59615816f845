package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
)

var ErrUserNotFound = errors.New("user not found")

// UserDirectory resolves the requesting account.
type UserDirectory interface {
	User(ctx context.Context, id int64) (domain.User, error)
}
