package live

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the websocket subscribers of the reservation feed.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]int64
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]int64),
	}
}

func (h *Hub) Register(conn *websocket.Conn, userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = userID
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.conns[conn]; exists {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

// Broadcast sends message to every subscriber. Connections that fail a
// write are dropped.
func (h *Hub) Broadcast(message interface{}) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}
