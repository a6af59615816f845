package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

// Topics the owner notifier listens to.
var notifiedTopics = []string{
	domain.ListingSubmitted{}.EventName(),
	domain.ListingModerated{}.EventName(),
}

// Notifier tells owners about the moderation outcome of their listings.
// Delivery is a structured log line; a mail or push sender can replace it.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier builds the owner notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

// Subscribe attaches the notifier to the bus until ctx is done.
func (n *Notifier) Subscribe(ctx context.Context, bus *platformevents.Bus) error {
	for _, topic := range notifiedTopics {
		if err := bus.Subscribe(ctx, topic, n.Handle); err != nil {
			return err
		}
	}
	return nil
}

// Handle decodes a listing envelope and notifies its owner.
func (n *Notifier) Handle(ctx context.Context, payload []byte) error {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "owner notified about listing",
		slog.String("event", envelope.Name),
		slog.Int64("listing.id", envelope.ListingID),
		slog.Int64("owner.id", envelope.OwnerID),
		slog.String("status", envelope.Status),
	)
	return nil
}
