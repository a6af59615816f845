package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingApproved struct {
	ListingID int64 `json:"listingId"`
}

func TestBus_PublishDeliversToSubscriber(t *testing.T) {
	bus := NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan listingApproved, 1)
	require.NoError(t, bus.Subscribe(ctx, "listings.listing.moderated", func(_ context.Context, payload []byte) error {
		var evt listingApproved
		if err := json.Unmarshal(payload, &evt); err != nil {
			return err
		}
		received <- evt
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, "listings.listing.moderated", listingApproved{ListingID: 42}))

	select {
	case evt := <-received:
		assert.Equal(t, int64(42), evt.ListingID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus(nil)
	t.Cleanup(func() { _ = bus.Close() })

	assert.NoError(t, bus.Publish(context.Background(), "nobody.listens", map[string]string{"k": "v"}))
}

func TestBus_NilBus(t *testing.T) {
	var bus *Bus
	assert.Error(t, bus.Publish(context.Background(), "topic", nil))
	assert.NoError(t, bus.Close())
}
