package eventbus

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New(zerolog.Nop())

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventPanicRaised, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(PanicRaisedEvent{Message: "boom"})

	select {
	case e := <-received:
		event, ok := e.(PanicRaisedEvent)
		require.True(t, ok)
		assert.Equal(t, "boom", event.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirEventType(t *testing.T) {
	bus := New(zerolog.Nop())

	received := make(chan DomainEvent, 2)
	bus.Subscribe(EventPanicCleared, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(PanicRaisedEvent{Message: "wrong type"})
	bus.Publish(PanicClearedEvent{})

	select {
	case e := <-received:
		assert.Equal(t, EventPanicCleared, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeRemovesOnlyItsOwnHandler(t *testing.T) {
	bus := New(zerolog.Nop())

	firstSeen := make(chan DomainEvent, 2)
	secondSeen := make(chan DomainEvent, 2)
	unsubFirst := bus.Subscribe(EventError, func(e DomainEvent) {
		firstSeen <- e
	})
	unsubSecond := bus.Subscribe(EventError, func(e DomainEvent) {
		secondSeen <- e
	})

	// Removing the first subscriber must not disturb the second, even
	// though the second was registered at a later slot
	unsubFirst()
	bus.Publish(ErrorEvent{Message: "after first unsubscribe"})

	select {
	case e := <-secondSeen:
		assert.Equal(t, EventError, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("second handler was removed by the first unsubscribe")
	}
	select {
	case <-firstSeen:
		t.Fatal("first handler still receiving after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}

	// Unsubscribing twice is a no-op
	unsubFirst()
	unsubSecond()
	bus.Publish(ErrorEvent{Message: "nobody left"})
	select {
	case <-secondSeen:
		t.Fatal("second handler still receiving after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	bus := New(zerolog.Nop())

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) {
		panic("bad subscriber")
	})
	bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ErrorEvent{Message: "still delivered"})

	select {
	case e := <-received:
		event, ok := e.(ErrorEvent)
		require.True(t, ok)
		assert.Equal(t, "still delivered", event.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran after first panicked")
	}
}
