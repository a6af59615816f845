package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
)

// ErrInteractionNotFound covers both unknown ids and interactions owned by someone else.
var ErrInteractionNotFound = errors.New("interaction not found")

// InteractionRepository stores the assistant's exchanges.
type InteractionRepository interface {
	// Create assigns the id and creation time.
	Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Interaction, error)
	// SetFeedback updates the feedback of an interaction owned by accountID.
	SetFeedback(ctx context.Context, id, accountID int64, feedback bool) error
	// ListByAccount returns up to limit interactions, newest first.
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]*domain.Interaction, error)
	// Stats counts interactions per detected topic, most used first.
	Stats(ctx context.Context) (domain.Stats, error)
}
