// Package broadcast implements the change notifier as an in-process fan-out
// hub. Command handlers publish after commit; HTTP event streams subscribe.
package broadcast

import (
	"sync"
)

// EventScope distinguishes order-scoped refreshes from whole-board ones.
type EventScope string

const (
	// ScopeOrder signals that one order's card changed.
	ScopeOrder EventScope = "order"

	// ScopeGeneral signals that board-wide state changed (roster, catalog,
	// eligibility, a placement, or a bulk clear).
	ScopeGeneral EventScope = "general"
)

// Event is one published change. OrderID is set only for ScopeOrder.
type Event struct {
	Scope   EventScope
	OrderID int64
}

// subscriberBuffer bounds how many undelivered events a subscriber may lag
// behind before the hub starts dropping events for it.
const subscriberBuffer = 16

// Hub fans committed-change events out to subscribers. Publishing never
// blocks: a subscriber that stops draining its channel loses events instead
// of stalling command handlers. Dropped events are safe because every event
// is a refresh hint, not a state carrier.
type Hub struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe registers a listener and returns its event channel plus a cancel
// function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++

	ch := make(chan Event, subscriberBuffer)
	h.subscribers[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// OrderChanged publishes an order-scoped refresh hint.
func (h *Hub) OrderChanged(orderID int64) {
	h.publish(Event{Scope: ScopeOrder, OrderID: orderID})
}

// GeneralChanged publishes a board-wide refresh hint.
func (h *Hub) GeneralChanged() {
	h.publish(Event{Scope: ScopeGeneral})
}

// Close shuts the hub down and closes every subscriber channel. Publishing
// after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}

func (h *Hub) publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is not draining; drop rather than block.
		}
	}
}
