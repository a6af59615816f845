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

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
)

func TestPublisher_AnsweredEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus := platformevents.NewBus(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer bus.Close()

	received := make(chan Envelope, 1)
	require.NoError(t, bus.Subscribe(ctx, domain.ApplicationAnswered{}.EventName(), func(_ context.Context, payload []byte) error {
		var envelope Envelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return err
		}
		received <- envelope
		return nil
	}))

	err := NewPublisher(bus, nil).Publish(ctx, domain.ApplicationAnswered{
		BaseEvent:     domain.BaseEvent{Timestamp: time.Now()},
		ApplicationID: 12,
		PetID:         4,
		ApplicantID:   8,
		OwnerID:       2,
		Approved:      false,
	})
	require.NoError(t, err)

	select {
	case envelope := <-received:
		assert.Equal(t, int64(12), envelope.ApplicationID)
		assert.Equal(t, int64(8), envelope.ApplicantID)
		require.NotNil(t, envelope.Approved)
		assert.False(t, *envelope.Approved)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestNotifier_Handlers(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	payload, err := json.Marshal(Envelope{Name: "adoptions.application.submitted", ApplicationID: 3, PetID: 1, OwnerID: 6})
	require.NoError(t, err)
	require.NoError(t, notifier.HandleSubmitted(ctx, payload))
	assert.Contains(t, buf.String(), `"owner.id":6`)

	approved := true
	payload, err = json.Marshal(Envelope{Name: "adoptions.application.answered", ApplicationID: 3, ApplicantID: 7, Approved: &approved})
	require.NoError(t, err)
	require.NoError(t, notifier.HandleAnswered(ctx, payload))
	assert.Contains(t, buf.String(), `"approved":true`)

	assert.Error(t, notifier.HandleAnswered(ctx, []byte("not json")))
}
