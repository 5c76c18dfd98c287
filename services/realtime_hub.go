package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RankUpdate is pushed to every connected leaderboard viewer after a
// workout submission is scored.
type RankUpdate struct {
	UserID   uint   `json:"userId"`
	RankName string `json:"rankName"`
	Points   int    `json:"points"`
}

type WSClient struct {
	Conn *websocket.Conn

	writeMu sync.Mutex
}

// Send serializes writes to the connection. Broadcasts and the keepalive
// ping goroutine share the conn, and gorilla forbids concurrent writers.
func (c *WSClient) Send(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) BroadcastRankUpdate(update RankUpdate) {
	msg, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
