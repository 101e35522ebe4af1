package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"logitrack-app/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// inbound is what a driver device sends over the socket: a location fix and
// optionally the status it observes.
type inbound struct {
	Status models.TripStatus `json:"status,omitempty"`
	Lat    *float64          `json:"lat,omitempty"`
	Lng    *float64          `json:"lng,omitempty"`
}

// ReadPump relays client messages to the trip group until the connection
// drops. Malformed frames are ignored, not fatal.
func (c *Client) ReadPump(h *Hub, log *zap.SugaredLogger) {
	defer func() {
		h.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnw("websocket read error", "trip_id", c.TripID, "error", err)
			}
			return
		}

		var in inbound
		if err := json.Unmarshal(message, &in); err != nil {
			log.Debugw("ignoring malformed websocket frame", "trip_id", c.TripID)
			continue
		}

		h.Publish(TripUpdate{
			TripID: c.TripID,
			Status: in.Status,
			Lat:    in.Lat,
			Lng:    in.Lng,
		})
	}
}

// WritePump drains the send channel onto the connection and keeps the peer
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
