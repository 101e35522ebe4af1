// Package ws fans trip updates out to websocket subscribers. Each trip has
// its own group; dispatcher views subscribe to the trips they watch and
// driver devices push location updates back through the same connection.
package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"logitrack-app/internal/models"
)

// TripUpdate is the payload broadcast to a trip group. Status-only updates
// (from the REST status endpoint) leave Lat/Lng nil.
type TripUpdate struct {
	TripID    int               `json:"trip_id"`
	Status    models.TripStatus `json:"status,omitempty"`
	Lat       *float64          `json:"lat,omitempty"`
	Lng       *float64          `json:"lng,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type Client struct {
	TripID int
	Conn   *websocket.Conn
	Send   chan []byte
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan TripUpdate
	groups     map[int]map[*Client]bool
	log        *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan TripUpdate, 16),
		groups:     make(map[int]map[*Client]bool),
		log:        log,
	}
}

// Run owns the group map. All membership changes and broadcasts go through
// the hub goroutine, so no locking is needed.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			group, ok := h.groups[client.TripID]
			if !ok {
				group = make(map[*Client]bool)
				h.groups[client.TripID] = group
			}
			group[client] = true
			h.log.Infow("websocket client joined", "trip_id", client.TripID, "subscribers", len(group))

		case client := <-h.unregister:
			if group, ok := h.groups[client.TripID]; ok {
				if group[client] {
					delete(group, client)
					close(client.Send)
					if len(group) == 0 {
						delete(h.groups, client.TripID)
					}
				}
			}

		case update := <-h.broadcast:
			h.fanOut(update)
		}
	}
}

func (h *Hub) fanOut(update TripUpdate) {
	group, ok := h.groups[update.TripID]
	if !ok {
		return
	}

	data, err := json.Marshal(update)
	if err != nil {
		h.log.Errorw("failed to marshal trip update", "error", err)
		return
	}

	for client := range group {
		select {
		case client.Send <- data:
		default:
			// Slow consumer: drop it rather than stall the hub.
			delete(group, client)
			close(client.Send)
		}
	}
}

// Register subscribes a client to its trip group.
func (h *Hub) Register(client *Client) { h.register <- client }

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(client *Client) { h.unregister <- client }

// Publish broadcasts an update to every subscriber of the trip. Safe to call
// from any goroutine; it never blocks the caller indefinitely because the
// broadcast channel is buffered and drained by Run.
func (h *Hub) Publish(update TripUpdate) {
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now().UTC()
	}
	h.broadcast <- update
}
