package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub manages all active WebSocket clients and fans listing events out
// to every connected client.
type Hub struct {
	// clients maps connection id → client.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.id] = client
			h.logger.Info("ws client connected",
				zap.String("conn_id", client.id.String()),
				zap.Int("total", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
				close(client.done)
				h.logger.Info("ws client disconnected",
					zap.String("conn_id", client.id.String()),
					zap.Int("total", len(h.clients)))
			}

		case data := <-h.broadcast:
			for id, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full - disconnect
					delete(h.clients, id)
					close(client.send)
					close(client.done)
				}
			}
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("ws hub marshal", zap.Error(err))
		return
	}
	h.broadcast <- data
}
