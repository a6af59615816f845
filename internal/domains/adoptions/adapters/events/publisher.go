package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Envelope is the wire format of an application event on the bus.
type Envelope struct {
	Name          string    `json:"name"`
	OccurredAt    time.Time `json:"occurredAt"`
	ApplicationID int64     `json:"applicationId"`
	PetID         int64     `json:"petId"`
	ApplicantID   int64     `json:"applicantId"`
	OwnerID       int64     `json:"ownerId"`
	Approved      *bool     `json:"approved,omitempty"`
}

// Publisher sends application events to the in-process bus.
type Publisher struct {
	bus    *platformevents.Bus
	logger *slog.Logger
}

func NewPublisher(bus *platformevents.Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		envelope := toEnvelope(event)
		if err := p.bus.Publish(ctx, envelope.Name, envelope); err != nil {
			p.logger.WarnContext(ctx, "failed to publish application event",
				slog.String("event", envelope.Name),
				slog.Int64("application.id", envelope.ApplicationID),
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
	case domain.ApplicationSubmitted:
		envelope.ApplicationID = e.ApplicationID
		envelope.PetID = e.PetID
		envelope.ApplicantID = e.ApplicantID
		envelope.OwnerID = e.OwnerID
	case domain.ApplicationAnswered:
		approved := e.Approved
		envelope.ApplicationID = e.ApplicationID
		envelope.PetID = e.PetID
		envelope.ApplicantID = e.ApplicantID
		envelope.OwnerID = e.OwnerID
		envelope.Approved = &approved
	}
	return envelope
}
