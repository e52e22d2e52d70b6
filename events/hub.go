// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Mayank8528/claimwise-new2/models"
)

// writeWait bounds how long a single broadcast write may block on one
// connection before that connection is dropped.
const writeWait = 5 * time.Second

// Hub tracks connected feed clients and fans claim events out to all of
// them. Delivery is best-effort and fire-and-forget: it is not
// transactional with the repository mutation that caused the event, and
// a connection that cannot keep up is closed rather than buffered.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*websocket.Conn)}
}

// Add registers a connection and returns its hub-assigned ID.
func (h *Hub) Add(conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	h.conns[id] = conn
	n := len(h.conns)
	h.mu.Unlock()

	slog.Info("feed client connected", "conn_id", id, "clients", n)
	return id
}

// Remove deregisters and closes the connection. Safe to call for an ID
// that was already dropped by a failed broadcast.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	conn, ok := h.conns[id]
	if ok {
		delete(h.conns, id)
	}
	n := len(h.conns)
	h.mu.Unlock()

	if ok {
		conn.Close()
		slog.Info("feed client disconnected", "conn_id", id, "clients", n)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the event to every connected client. Connections whose
// write fails or times out are dropped. The lock also serializes writes;
// gorilla connections do not allow concurrent writers.
func (h *Hub) Broadcast(evt models.ClaimEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("failed to encode claim event", "type", evt.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Warn("dropping feed client", "conn_id", id, "error", err)
			conn.Close()
			delete(h.conns, id)
		}
	}

	slog.Info("claim event broadcast", "type", evt.Type, "claim_id", evt.Data.ID, "clients", len(h.conns))
}

// Close drops every connection, sending a close frame first so clients
// can tell a shutdown from a network failure.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		delete(h.conns, id)
	}
}
