package event_bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_deliversToSubscribers(t *testing.T) {
	bus := NewEventBus()
	var received []Event
	bus.Subscribe(FileProcessed, func(e Event) {
		received = append(received, e)
	})

	bus.Publish(NewEvent(FileProcessed, FileProcessedEvent{SheetID: "anna-2025", Records: 3}))

	assert.Len(t, received, 1)
	data, ok := received[0].Data.(FileProcessedEvent)
	assert.True(t, ok)
	assert.Equal(t, "anna-2025", data.SheetID)
}

func TestPublish_otherEventTypesAreNotDelivered(t *testing.T) {
	bus := NewEventBus()
	delivered := false
	bus.Subscribe(FileProcessed, func(Event) {
		delivered = true
	})

	bus.Publish(NewEvent(FileSkipped, FileSkippedEvent{Path: "anna.xlsx"}))

	assert.False(t, delivered)
}

func TestPublish_recoversHandlerPanics(t *testing.T) {
	bus := NewEventBus()
	bus.Subscribe(ContributionDropped, func(Event) {
		panic("audit subscriber blew up")
	})
	secondCalled := false
	bus.Subscribe(ContributionDropped, func(Event) {
		secondCalled = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(NewEvent(ContributionDropped, nil))
	})
	assert.True(t, secondCalled)
}
