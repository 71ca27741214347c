package demolog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"k2demo/models"
)

// BufferSize bounds the replay buffer; older events fall off the front.
const BufferSize = 250

// Emit is the argument shape for publishing an event. ID and Timestamp are
// assigned by the bus.
type Emit struct {
	Category  models.LogCategory
	Event     string
	Message   string
	SessionID string
	Payload   map[string]any
	Level     string
}

// Bus is an in-process pub-sub broadcast for demo log events with a bounded
// replay buffer. Safe for concurrent use; slow subscribers drop events rather
// than block publishers.
type Bus struct {
	mu        sync.Mutex
	buffer    []models.LogEvent
	listeners map[int]chan models.LogEvent
	nextID    int
	sessionID string
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[int]chan models.LogEvent),
		sessionID: newSessionID(),
	}
}

// Publish stamps and broadcasts an event, retaining it in the replay buffer.
func (b *Bus) Publish(e Emit) models.LogEvent {
	event := models.LogEvent{
		ID:        "evt-" + uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Category:  e.Category,
		Event:     e.Event,
		Message:   e.Message,
		SessionID: e.SessionID,
		Payload:   e.Payload,
		Level:     e.Level,
	}
	if event.SessionID == "" {
		event.SessionID = b.SessionID()
	}

	b.mu.Lock()
	b.buffer = append(b.buffer, event)
	if len(b.buffer) > BufferSize {
		b.buffer = b.buffer[len(b.buffer)-BufferSize:]
	}
	for _, ch := range b.listeners {
		select {
		case ch <- event:
		default:
		}
	}
	b.mu.Unlock()
	return event
}

// Subscribe registers a listener and returns its channel, a snapshot of the
// replay buffer, and an unsubscribe func.
func (b *Bus) Subscribe() (<-chan models.LogEvent, []models.LogEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.LogEvent, BufferSize)
	b.listeners[id] = ch

	snapshot := make([]models.LogEvent, len(b.buffer))
	copy(snapshot, b.buffer)

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.listeners[id]; ok {
			delete(b.listeners, id)
			close(c)
		}
	}
	return ch, snapshot, unsubscribe
}

// Clear drops the replay buffer and rotates the demo session id.
func (b *Bus) Clear() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer = nil
	b.sessionID = newSessionID()
	return b.sessionID
}

// SessionID returns the current demo session marker stamped on events that
// do not carry their own.
func (b *Bus) SessionID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionID
}

// Buffered returns a copy of the current replay buffer.
func (b *Bus) Buffered() []models.LogEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.LogEvent, len(b.buffer))
	copy(out, b.buffer)
	return out
}

// NewCorrelationID mints a correlation id for tying log events to a request.
func NewCorrelationID() string {
	return "corr-" + uuid.NewString()
}

func newSessionID() string {
	return "MSESS-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:14]
}
