package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Envelope is the wire format of a listing event on the bus.
type Envelope struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
	ListingID  int64     `json:"listingId"`
	OwnerID    int64     `json:"ownerId"`
	Status     string    `json:"status,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// Publisher sends listing events to the in-process bus, one topic per event name.
type Publisher struct {
	bus    *platformevents.Bus
	logger *slog.Logger
}

// NewPublisher wires the bus.
func NewPublisher(bus *platformevents.Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

// Publish sends each event; failures are logged and joined.
func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		envelope := toEnvelope(event)
		if err := p.bus.Publish(ctx, envelope.Name, envelope); err != nil {
			p.logger.WarnContext(ctx, "failed to publish listing event",
				slog.String("event", envelope.Name),
				slog.Int64("listing.id", envelope.ListingID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func toEnvelope(event domain.Event) Envelope {
	envelope := Envelope{Name: event.EventName(), OccurredAt: event.OccurredAt()}
	switch e := event.(type) {
	case domain.ListingSubmitted:
		envelope.ListingID = e.ListingID
		envelope.OwnerID = e.OwnerID
		envelope.Status = string(e.Moderation)
	case domain.ListingModerated:
		envelope.ListingID = e.ListingID
		envelope.OwnerID = e.OwnerID
		envelope.Status = string(e.To)
		envelope.Reason = e.Reason
	case domain.AdoptionStatusChanged:
		envelope.ListingID = e.ListingID
		envelope.OwnerID = e.OwnerID
		envelope.Status = string(e.To)
	}
	return envelope
}
