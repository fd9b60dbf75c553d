package sse

import (
	"sync"
)

// Event names pushed to clients. Clients refetch the dashboard when they see
// a change event.
const (
	EventConnected      = "connected"
	EventPing           = "ping"
	EventShiftsChanged  = "shifts_changed"
	EventProfileChanged = "profile_changed"
)

const defaultBufferSize = 10

// Event is one message for one user's open streams
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// ShiftsChangedData tells a client which dates need refreshing
type ShiftsChangedData struct {
	ShiftID string `json:"shift_id,omitempty"`
	Date    string `json:"date,omitempty"`
	Action  string `json:"action"`
}

// Publisher is what services need to announce changes
type Publisher interface {
	Publish(event Event)
	PublishToUsers(userIDs []string, name string, data interface{})
}

// Hub fans events out to every open stream of a user
type Hub struct {
	mu          sync.RWMutex
	bufferSize  int
	subscribers map[string]map[chan Event]struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		bufferSize:  defaultBufferSize,
		subscribers: make(map[string]map[chan Event]struct{}),
		done:        make(chan struct{}),
	}
}

// Done is closed when the hub shuts down. Streams should return.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close ends every open stream. Publish is a no-op afterwards.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Subscribe opens a stream for userID. The returned func closes it and must
// be called exactly once.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[userID], ch)
			close(ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
		})
	}

	return ch, cleanup
}

// Publish delivers to event.UserID's streams. Slow streams drop the event.
func (h *Hub) Publish(event Event) {
	select {
	case <-h.done:
		return
	default:
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishToUsers sends the same event to several users
func (h *Hub) PublishToUsers(userIDs []string, name string, data interface{}) {
	for _, userID := range userIDs {
		h.Publish(Event{UserID: userID, Event: name, Data: data})
	}
}

func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[userID])
}
