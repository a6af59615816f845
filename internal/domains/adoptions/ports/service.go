package ports

import (
	"context"

	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
)

// Service exposes the adoption application use cases to adapters.
type Service interface {
	Apply(ctx context.Context, input adoptiontypes.ApplyInput) (*domain.Application, error)
	ListReceived(ctx context.Context, ownerID int64) ([]*domain.Application, error)
	ListSent(ctx context.Context, applicantID int64) ([]*domain.Application, error)
	View(ctx context.Context, input adoptiontypes.ViewInput) (*domain.Application, error)
	Respond(ctx context.Context, input adoptiontypes.RespondInput) (*domain.Application, error)
}
