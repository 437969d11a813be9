// AngelaMos | 2026
// bus.go

// Package events is a small in-process pub/sub bus for auth state changes.
// It replaces the original's ambient auth-state listener: services publish,
// subscribers react, and no handler reads global session state.
package events

import (
	"context"
	"sync"
	"time"
)

type AuthEventType string

const (
	SignedUp         AuthEventType = "signed_up"
	SignedIn         AuthEventType = "signed_in"
	SignedOut        AuthEventType = "signed_out"
	PasswordChanged  AuthEventType = "password_changed"
	PasswordRecovery AuthEventType = "password_recovery"
)

type AuthEvent struct {
	Type       AuthEventType
	UserID     string
	Email      string
	OccurredAt time.Time
}

type Subscriber func(ctx context.Context, ev AuthEvent)

type Bus struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers the event to every subscriber synchronously. Subscribers
// must not block; anything slow belongs in the subscriber's own goroutine.
func (b *Bus) Publish(ctx context.Context, ev AuthEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	b.mu.RLock()
	subs := make([]Subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx, ev)
	}
}
