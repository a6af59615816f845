package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

// Notifier tells the owner about new applications and the applicant about answers.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

// Subscribe attaches the notifier to the bus until ctx is done.
func (n *Notifier) Subscribe(ctx context.Context, bus *platformevents.Bus) error {
	if err := bus.Subscribe(ctx, domain.ApplicationSubmitted{}.EventName(), n.HandleSubmitted); err != nil {
		return err
	}
	return bus.Subscribe(ctx, domain.ApplicationAnswered{}.EventName(), n.HandleAnswered)
}

// HandleSubmitted notifies the pet owner.
func (n *Notifier) HandleSubmitted(ctx context.Context, payload []byte) error {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "owner notified about new application",
		slog.Int64("application.id", envelope.ApplicationID),
		slog.Int64("pet.id", envelope.PetID),
		slog.Int64("owner.id", envelope.OwnerID),
	)
	return nil
}

// HandleAnswered notifies the applicant.
func (n *Notifier) HandleAnswered(ctx context.Context, payload []byte) error {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return err
	}
	approved := envelope.Approved != nil && *envelope.Approved
	n.logger.InfoContext(ctx, "applicant notified about answer",
		slog.Int64("application.id", envelope.ApplicationID),
		slog.Int64("applicant.id", envelope.ApplicantID),
		slog.Bool("approved", approved),
	)
	return nil
}
