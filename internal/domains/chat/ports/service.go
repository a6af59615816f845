package ports

import (
	"context"

	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
)

// Service exposes the assistant use cases to adapters.
type Service interface {
	HandleMessage(ctx context.Context, input chattypes.MessageInput) (*chattypes.MessageResult, error)
	SubmitFeedback(ctx context.Context, input chattypes.FeedbackInput) error
	History(ctx context.Context, accountID int64) ([]*domain.Interaction, error)
	Suggestions(ctx context.Context, accountID int64) ([]domain.PetRecord, error)
	Stats(ctx context.Context, staffID int64) (domain.Stats, error)
}
