package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/internal/utils"
	"github.com/prasongk/fleetview/services/mapview"
	"github.com/prasongk/fleetview/services/mapview/usecase"
)

// MapViewHandler handles HTTP requests for the map view
type MapViewHandler struct {
	mapviewUC mapview.MapViewUC
	cfg       *models.Config
}

// NewMapViewHandler creates a new map view HTTP handler
func NewMapViewHandler(mapviewUC mapview.MapViewUC, cfg *models.Config) *MapViewHandler {
	return &MapViewHandler{
		mapviewUC: mapviewUC,
		cfg:       cfg,
	}
}

// statusFilter parses the statuses query parameter. An absent parameter
// means all four known status keys are selected.
func statusFilter(c echo.Context) []string {
	raw := c.QueryParam("statuses")
	if raw == "" {
		return models.AllStatusKeys()
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetSnapshot returns the filtered vehicle list, geofences, the status
// filter table, and feed freshness.
func (h *MapViewHandler) GetSnapshot(c echo.Context) error {
	search := c.QueryParam("search")
	statuses := statusFilter(c)

	snapshot := h.mapviewUC.Snapshot()
	vehicles := h.mapviewUC.FilteredVehicles(search, statuses)

	return utils.SuccessResponse(c, http.StatusOK, "Fleet snapshot retrieved", map[string]interface{}{
		"vehicles":     vehicles,
		"geofences":    snapshot.Geofences,
		"fetched_at":   snapshot.FetchedAt,
		"feed_status":  h.mapviewUC.FeedStatus(),
		"status_types": models.StatusTypes,
	})
}

// GetMarkers returns the clustered markers for the current filter and zoom.
func (h *MapViewHandler) GetMarkers(c echo.Context) error {
	search := c.QueryParam("search")
	statuses := statusFilter(c)

	zoom := h.cfg.Map.DefaultZoom
	if zoomStr := c.QueryParam("zoom"); zoomStr != "" {
		parsed, err := strconv.Atoi(zoomStr)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid zoom")
		}
		zoom = parsed
	}

	clusters := h.mapviewUC.Markers(search, statuses, zoom)
	return utils.SuccessResponse(c, http.StatusOK, "Markers retrieved", clusters)
}

// SelectVehicle selects a vehicle, opening its event timeline for today.
func (h *MapViewHandler) SelectVehicle(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	view, err := h.mapviewUC.SelectVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		if errors.Is(err, usecase.ErrVehicleNotFound) {
			return utils.NotFoundResponse(c, "vehicle not found")
		}
		logger.Error("Failed to select vehicle",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to select vehicle")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle selected", view)
}

// GetSession returns the current session: state, viewport, windowed events
// with resolved positions, sensor names, and the derived route.
func (h *MapViewHandler) GetSession(c echo.Context) error {
	view := h.mapviewUC.Session(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", view)
}

// CloseSession deselects the vehicle and resets the viewport.
func (h *MapViewHandler) CloseSession(c echo.Context) error {
	h.mapviewUC.CloseSelection()
	view := h.mapviewUC.Session(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Session closed", view)
}
