package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prasongk/fleetview/internal/pkg/models"
	ws "github.com/prasongk/fleetview/internal/pkg/websocket"
	"github.com/prasongk/fleetview/services/mapview"
	httpHandler "github.com/prasongk/fleetview/services/mapview/handler/http"
	wsHandler "github.com/prasongk/fleetview/services/mapview/handler/websocket"
)

// HTTPHandler combines all handlers for the map view service
type HTTPHandler struct {
	mapviewHTTP *httpHandler.MapViewHandler
	mapFeedWS   *wsHandler.MapFeedHandler
	cfg         *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(mapviewUC mapview.MapViewUC, wsManager *ws.Manager, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		mapviewHTTP: httpHandler.NewMapViewHandler(mapviewUC, cfg),
		mapFeedWS:   wsHandler.NewMapFeedHandler(wsManager),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	mapGroup := e.Group("/map")
	mapGroup.GET("/snapshot", h.mapviewHTTP.GetSnapshot)
	mapGroup.GET("/markers", h.mapviewHTTP.GetMarkers)
	mapGroup.POST("/select/:id", h.mapviewHTTP.SelectVehicle)
	mapGroup.GET("/session", h.mapviewHTTP.GetSession)
	mapGroup.POST("/close", h.mapviewHTTP.CloseSession)

	e.GET("/ws/map", h.mapFeedWS.HandleMapFeed)
}
