package ports

import (
	"context"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
)

// EventPublisher forwards domain events to interested subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}
