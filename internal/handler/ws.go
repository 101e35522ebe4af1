package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"logitrack-app/internal/ws"
	"logitrack-app/pkg/datastore"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The console runs cross-origin against this API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	Store *datastore.Store
	Hub   *ws.Hub
	Log   *zap.SugaredLogger
}

// TripFeed upgrades the connection and joins the caller to the trip's
// update group.
func (h *WSHandler) TripFeed(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, found := h.Store.Trips.Get(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.Warnw("websocket upgrade failed", "trip_id", id, "error", err)
		return
	}

	client := &ws.Client{TripID: id, Conn: conn, Send: make(chan []byte, 8)}
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.Hub, h.Log)
}
