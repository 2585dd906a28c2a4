package websocket

import (
	"github.com/labstack/echo/v4"

	ws "github.com/prasongk/fleetview/internal/pkg/websocket"
)

// MapFeedHandler serves the live map feed socket.
type MapFeedHandler struct {
	manager *ws.Manager
}

// NewMapFeedHandler creates a new map feed handler
func NewMapFeedHandler(manager *ws.Manager) *MapFeedHandler {
	return &MapFeedHandler{manager: manager}
}

// HandleMapFeed upgrades the connection and subscribes the client to fleet
// snapshot broadcasts.
func (h *MapFeedHandler) HandleMapFeed(c echo.Context) error {
	return h.manager.HandleConnection(c)
}
