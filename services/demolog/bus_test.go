package demolog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k2demo/models"
)

func TestPublishStampsEvent(t *testing.T) {
	bus := NewBus()

	event := bus.Publish(Emit{
		Category: models.LogCategoryK2,
		Event:    "scenario_compiled",
		Message:  "compiled",
	})
	assert.True(t, strings.HasPrefix(event.ID, "evt-"))
	assert.NotEmpty(t, event.Timestamp)
	assert.Equal(t, bus.SessionID(), event.SessionID)
}

func TestSubscribeReplaysBufferThenStreams(t *testing.T) {
	bus := NewBus()
	bus.Publish(Emit{Category: models.LogCategorySystem, Event: "boot"})

	ch, snapshot, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	require.Len(t, snapshot, 1)
	assert.Equal(t, "boot", snapshot[0].Event)

	bus.Publish(Emit{Category: models.LogCategorySystem, Event: "live"})
	live := <-ch
	assert.Equal(t, "live", live.Event)
}

func TestBufferBounded(t *testing.T) {
	bus := NewBus()
	for i := 0; i < BufferSize+25; i++ {
		bus.Publish(Emit{Category: models.LogCategoryUI, Event: fmt.Sprintf("e%d", i)})
	}

	buffered := bus.Buffered()
	require.Len(t, buffered, BufferSize)
	assert.Equal(t, "e25", buffered[0].Event)
}

func TestClearRotatesSession(t *testing.T) {
	bus := NewBus()
	before := bus.SessionID()
	bus.Publish(Emit{Category: models.LogCategoryUI, Event: "e"})

	after := bus.Clear()
	assert.NotEqual(t, before, after)
	assert.Empty(t, bus.Buffered())
	assert.True(t, strings.HasPrefix(after, "MSESS-"))
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, _, unsubscribe := bus.Subscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	bus.Publish(Emit{Category: models.LogCategoryUI, Event: "after"})
}

func TestNewCorrelationID(t *testing.T) {
	id := NewCorrelationID()
	assert.True(t, strings.HasPrefix(id, "corr-"))
	assert.NotEqual(t, id, NewCorrelationID())
}
