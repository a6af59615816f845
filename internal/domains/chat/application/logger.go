package application

import (
	"context"

	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

// InteractionLogger records exchanges and their feedback.
type InteractionLogger struct {
	repo ports.InteractionRepository
}

func NewInteractionLogger(repo ports.InteractionRepository) *InteractionLogger {
	return &InteractionLogger{repo: repo}
}

// Record stores one exchange. Repeated turns are stored as separate interactions.
func (l *InteractionLogger) Record(ctx context.Context, input chattypes.RecordInput) (*domain.Interaction, error) {
	latency := input.LatencyMs
	return l.repo.Create(ctx, &domain.Interaction{
		AccountID:     input.AccountID,
		Message:       input.Message,
		Response:      input.Response,
		Topic:         input.TopicHint,
		DetectedTopic: input.DetectedTopic,
		LatencyMs:     &latency,
		SessionID:     input.SessionID,
	})
}

// SetFeedback rates an interaction owned by requesterID.
func (l *InteractionLogger) SetFeedback(ctx context.Context, id, requesterID int64, feedback bool) error {
	if id <= 0 {
		return mapError(domain.ErrMissingInteraction)
	}
	return l.repo.SetFeedback(ctx, id, requesterID, feedback)
}
