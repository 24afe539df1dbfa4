package ws

import (
	"encoding/json"
	"sync"

	"github.com/raceclub/chat-service/internal/model"
)

// Hub is the per-room broadcast channel: a registry of live connections
// keyed by the single room each one observes. It is constructed in main and
// handed to the accept path and the REST handlers; all mutation happens
// under one lock.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Conn]struct{}
	conns map[*Conn]string // current room per connection, "" while unsubscribed
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Conn]struct{}),
		conns: make(map[*Conn]string),
	}
}

// Add registers a freshly opened connection in the unsubscribed state.
func (h *Hub) Add(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[c] = ""
}

// Subscribe moves a connection to roomID. A previous subscription is
// dropped silently; only the most recent join is honored.
func (h *Hub) Subscribe(c *Conn, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev, ok := h.conns[c]
	if !ok {
		return // already removed
	}
	if prev == roomID {
		return
	}

	h.detachLocked(c, prev)

	rs, ok := h.rooms[roomID]
	if !ok {
		rs = make(map[*Conn]struct{})
		h.rooms[roomID] = rs
	}
	rs[c] = struct{}{}
	h.conns[c] = roomID
}

// Remove drops a connection entirely; no further events are delivered.
func (h *Hub) Remove(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.conns[c]; ok {
		h.detachLocked(c, prev)
		delete(h.conns, c)
	}
}

func (h *Hub) detachLocked(c *Conn, roomID string) {
	if roomID == "" {
		return
	}
	if rs, ok := h.rooms[roomID]; ok {
		delete(rs, c)
		if len(rs) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

// Publish fans an event out to every connection subscribed to roomID.
// Delivery is at-most-once and best-effort: a room with no subscribers is a
// no-op, and a connection whose outbound buffer is full is dropped rather
// than allowed to stall the rest.
func (h *Hub) Publish(roomID string, event model.LiveEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	targets := make([]*Conn, 0, len(h.rooms[roomID]))
	for c := range h.rooms[roomID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.enqueue(data) {
			h.Remove(c)
			c.close()
		}
	}
}

// SubscriberCount reports how many connections currently observe roomID.
func (h *Hub) SubscriberCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[roomID])
}
