package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"docpane/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDocsLoaded      = domain.EventDocsLoaded
	EventDocSelected     = domain.EventDocSelected
	EventLoadStarted     = domain.EventLoadStarted
	EventReloadRequested = domain.EventReloadRequested
	EventThemeChanged    = domain.EventThemeChanged
	EventPanicRaised     = domain.EventPanicRaised
	EventPanicCleared    = domain.EventPanicCleared
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventConfigChanged   = domain.EventConfigChanged
	EventError           = domain.EventError
)

// Re-export domain event types
type DocsLoadedEvent = domain.DocsLoadedEvent
type DocSelectedEvent = domain.DocSelectedEvent
type LoadStartedEvent = domain.LoadStartedEvent
type ReloadRequestedEvent = domain.ReloadRequestedEvent
type ThemeChangedEvent = domain.ThemeChangedEvent
type PanicRaisedEvent = domain.PanicRaisedEvent
type PanicClearedEvent = domain.PanicClearedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscriber pairs a handler with the token its unsubscribe closure
// removes it by
type subscriber struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	log       zerolog.Logger
	handlers  map[EventType][]subscriber
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New(log zerolog.Logger) EventBus {
	b := &bus{
		log:       log,
		handlers:  make(map[EventType][]subscriber),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. Publishing never
// blocks; if the channel is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		b.log.Warn().Str("event", string(event.Type())).Msg("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	// Removal is by token, so earlier unsubscribes cannot shift this
	// subscriber out from under its own closure
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			subsCopy := make([]subscriber, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				b.invoke(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// invoke calls one handler, recovering panics so a bad subscriber
// cannot take down the dispatcher.
func (b *bus) invoke(handler EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panicked")
		}
	}()
	handler(event)
}
