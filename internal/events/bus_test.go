// AngelaMos | 2026
// bus_test.go

package events

import (
	"context"
	"testing"
	"time"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []AuthEvent
	bus.Subscribe(func(_ context.Context, ev AuthEvent) {
		first = append(first, ev)
	})
	bus.Subscribe(func(_ context.Context, ev AuthEvent) {
		second = append(second, ev)
	})

	ev := AuthEvent{
		Type:       SignedIn,
		UserID:     "user-1",
		Email:      "dana@example.com",
		OccurredAt: time.Now(),
	}
	bus.Publish(context.Background(), ev)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("deliveries = %d/%d, want 1/1", len(first), len(second))
	}
	if first[0].Type != SignedIn || first[0].UserID != "user-1" {
		t.Fatalf("event = %+v", first[0])
	}
}

func TestBusWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Publish(context.Background(), AuthEvent{Type: SignedOut})
}
