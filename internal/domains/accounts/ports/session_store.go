package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
)

// ErrSessionNotFound is returned for unknown, revoked or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the tokens that are currently logged in.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
