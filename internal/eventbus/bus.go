// Package eventbus carries typed domain events from the workflow core to its
// subscribers. Transitions produce events; the notification adapter and any
// other listener register independently instead of sharing a mutable
// observer list.
package eventbus

import (
	"context"

	"github.com/wb-go/wbf/zlog"
)

// Event is a domain event emitted by the workflow core.
type Event interface {
	Name() string
}

// Handler consumes one event. Handlers must not block; slow work belongs on
// the notification queues.
type Handler func(ctx context.Context, ev Event)

// Bus is a registry of handlers keyed by event name.
type Bus struct {
	subs map[string][]Handler
}

func New() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registers h for every event published under name. Subscription
// happens during wiring, before Publish is ever called, so no locking.
func (b *Bus) Subscribe(name string, h Handler) {
	b.subs[name] = append(b.subs[name], h)
}

// Publish delivers ev to all handlers registered for its name.
func (b *Bus) Publish(ctx context.Context, ev Event) {
	handlers := b.subs[ev.Name()]
	if len(handlers) == 0 {
		zlog.Logger.Debug().Str("event", ev.Name()).Msg("no subscribers for event")
		return
	}

	for _, h := range handlers {
		h(ctx, ev)
	}
}
