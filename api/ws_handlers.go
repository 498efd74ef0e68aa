package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is the envelope for every event pushed to observers.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks connected activity-feed observers. The feed is read-only:
// clients receive events, anything they send is discarded.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
	log   *slog.Logger
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   slog.Default().With("component", "ws"),
	}
}

// ServeWS upgrades the request and keeps the connection registered until
// the client goes away.
func (hub *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Send the welcome frame before registering, so it cannot interleave
	// with a Broadcast write on the same connection.
	if err := conn.WriteJSON(WSMessage{Type: "connected", Data: map[string]string{"status": "connected"}}); err != nil {
		hub.log.Error("welcome frame failed", "error", err)
		return
	}

	hub.mu.Lock()
	hub.conns[conn] = struct{}{}
	hub.mu.Unlock()
	hub.log.Info("observer connected", "remote_addr", conn.RemoteAddr().String())

	defer func() {
		hub.mu.Lock()
		delete(hub.conns, conn)
		hub.mu.Unlock()
		hub.log.Info("observer disconnected", "remote_addr", conn.RemoteAddr().String())
	}()

	// Drain client frames so pings are answered; payloads are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes an event to every connected observer. Connections that
// fail to write are dropped.
func (hub *Hub) Broadcast(eventType string, data any) {
	msg := WSMessage{Type: eventType, Data: data}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for conn := range hub.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(hub.conns, conn)
		}
	}
}

// Observers reports the number of connected feed clients.
func (hub *Hub) Observers() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.conns)
}
