package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Topics a client may subscribe to; they mirror the three tables. A client
// with no topics receives everything.
const (
	TopicRecipes    = "recipes"
	TopicMealLogs   = "meal_logs"
	TopicDailyGoals = "daily_goals"
)

type WSClient struct {
	ID     string
	Topics map[string]struct{}
	Conn   *websocket.Conn
}

// RealtimeHub fans table-change events out to connected websocket clients.
// It stands in for the live-query subscriptions the screens consume: every
// write is announced so clients can refetch and recompute.
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

func (h *RealtimeHub) Broadcast(topic string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if len(c.Topics) > 0 {
			if _, ok := c.Topics[topic]; !ok {
				continue
			}
		}
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// ClientCount is used by the health endpoint.
func (h *RealtimeHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
