package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

func TestPublisher_DeliversEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus := platformevents.NewBus(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer bus.Close()

	received := make(chan Envelope, 1)
	require.NoError(t, bus.Subscribe(ctx, "listings.listing.moderated", func(_ context.Context, payload []byte) error {
		var envelope Envelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return err
		}
		received <- envelope
		return nil
	}))

	publisher := NewPublisher(bus, nil)
	err := publisher.Publish(ctx, domain.ListingModerated{
		BaseEvent: domain.BaseEvent{Timestamp: time.Now()},
		ListingID: 7,
		OwnerID:   3,
		From:      domain.ModerationPending,
		To:        domain.ModerationRejected,
		Reason:    "foto borrada",
	})
	require.NoError(t, err)

	select {
	case envelope := <-received:
		assert.Equal(t, int64(7), envelope.ListingID)
		assert.Equal(t, "rejected", envelope.Status)
		assert.Equal(t, "foto borrada", envelope.Reason)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestNotifier_HandleLogsOwner(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	payload, err := json.Marshal(Envelope{Name: "listings.listing.submitted", ListingID: 1, OwnerID: 9, Status: "pending"})
	require.NoError(t, err)
	require.NoError(t, notifier.Handle(context.Background(), payload))
	assert.Contains(t, buf.String(), `"owner.id":9`)

	assert.Error(t, notifier.Handle(context.Background(), []byte("{")))
}
