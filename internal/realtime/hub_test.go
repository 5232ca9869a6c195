package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(1)
	defer hub.Unsubscribe(sub)

	hub.Broadcast(NewWaitingTimeEvent(1, 25), nil)

	ev := <-sub.Events()
	require.Equal(t, EventWaitingTimeUpdated, ev.Type)
	require.Equal(t, uint(1), ev.ShopID)

	payload, ok := ev.Data.(WaitingTimePayload)
	require.True(t, ok)
	require.Equal(t, 25, payload.WaitingTime)
}

func TestHubScopesByShop(t *testing.T) {
	hub := NewHub()

	subA := hub.Subscribe(1)
	subB := hub.Subscribe(2)
	defer hub.Unsubscribe(subA)
	defer hub.Unsubscribe(subB)

	hub.Broadcast(NewWaitingTimeEvent(1, 10), nil)

	require.Len(t, subA.Events(), 1)
	require.Len(t, subB.Events(), 0)
}

func TestHubExcludesSender(t *testing.T) {
	hub := NewHub()

	sender := hub.Subscribe(1)
	other := hub.Subscribe(1)
	defer hub.Unsubscribe(sender)
	defer hub.Unsubscribe(other)

	hub.Broadcast(NewWaitingTimeEvent(1, 10), sender)

	require.Len(t, sender.Events(), 0)
	require.Len(t, other.Events(), 1)
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(1)
	defer hub.Unsubscribe(sub)

	// One more event than the buffer holds; Broadcast must not block.
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Broadcast(NewWaitingTimeEvent(1, i), nil)
	}

	require.Len(t, sub.Events(), subscriberBuffer)

	// The overflow event was dropped, not queued.
	first := <-sub.Events()
	payload := first.Data.(WaitingTimePayload)
	require.Equal(t, 0, payload.WaitingTime)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(1)
	hub.Unsubscribe(sub)

	_, open := <-sub.Events()
	require.False(t, open)

	// Double unsubscribe must not panic.
	hub.Unsubscribe(sub)

	// Broadcasting after the last subscriber left is a no-op.
	hub.Broadcast(NewWaitingTimeEvent(1, 5), nil)
}
