package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"rackline/internal/domain/entity"
	"rackline/pkg/logger"
)

// Client is one WebSocket connection subscribed to an order reference.
type Client struct {
	Reference string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub fans order status changes out to the tracking pages subscribed to
// the affected reference.
type Hub struct {
	clients    map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if h.clients[client.Reference] == nil {
					h.clients[client.Reference] = make(map[*Client]bool)
				}
				h.clients[client.Reference][client] = true
				h.mutex.Unlock()
				logger.Debug("ws: client subscribed to %s", client.Reference)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if subs, ok := h.clients[client.Reference]; ok && subs[client] {
					delete(subs, client)
					close(client.Send)
					if len(subs) == 0 {
						delete(h.clients, client.Reference)
					}
				}
				h.mutex.Unlock()
				logger.Debug("ws: client unsubscribed from %s", client.Reference)

			case <-ctx.Done():
				return
			}
		}
	}()
}

type statusMessage struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Step      int    `json:"step"`
	Cancelled bool   `json:"cancelled"`
}

// NotifyOrderStatus implements the use case notifier: every client
// subscribed to the reference gets the new status. Slow clients are
// dropped rather than blocking the broadcast.
func (h *Hub) NotifyOrderStatus(reference string, status entity.OrderStatus) {
	message, err := json.Marshal(statusMessage{
		Reference: reference,
		Status:    string(status),
		Step:      status.TrackingStep(),
		Cancelled: status == entity.OrderCancelled,
	})
	if err != nil {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients[reference] {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.clients[reference], client)
		}
	}
}

// ReadPump drains the connection until the client disconnects.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued messages to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("ws: write error: %v", err)
			return
		}
	}
}
