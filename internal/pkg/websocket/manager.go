package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

const writeTimeout = 10 * time.Second

// Manager manages WebSocket connections to map viewers and fans out
// snapshot updates to all of them.
type Manager struct {
	sync.RWMutex
	clients  map[string]*websocket.Conn
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// until the peer goes away. Incoming frames are drained and discarded; the
// map feed is push-only.
func (m *Manager) HandleConnection(c echo.Context) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &models.WebSocketClient{
		ClientID: uuid.New().String(),
		RemoteIP: c.RealIP(),
	}
	m.register(client.ClientID, ws)
	defer m.unregister(client.ClientID)

	logger.Info("Map viewer connected",
		logger.String("client_id", client.ClientID),
		logger.String("remote_ip", client.RemoteIP))

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	logger.Info("Map viewer disconnected", logger.String("client_id", client.ClientID))
	return nil
}

func (m *Manager) register(id string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	m.clients[id] = conn
}

func (m *Manager) unregister(id string) {
	m.Lock()
	defer m.Unlock()
	if conn, ok := m.clients[id]; ok {
		conn.Close()
		delete(m.clients, id)
	}
}

// Broadcast sends one event to every connected viewer. Connections that fail
// to accept the write are dropped.
func (m *Manager) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal broadcast payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}
	msg, err := json.Marshal(models.WSMessage{Event: event, Data: payload})
	if err != nil {
		logger.Error("Failed to marshal broadcast message",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	m.Lock()
	defer m.Unlock()
	for id, conn := range m.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warn("Dropping unresponsive map viewer",
				logger.String("client_id", id),
				logger.Err(err))
			conn.Close()
			delete(m.clients, id)
		}
	}
}

// ClientCount returns the number of connected viewers.
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// Close notifies all viewers that the feed is going away and disconnects
// them.
func (m *Manager) Close(ctx context.Context) error {
	notice, _ := json.Marshal(models.WSErrorMessage{
		Code:    "server_shutdown",
		Message: "map feed is shutting down",
	})

	m.Lock()
	defer m.Unlock()
	for id, conn := range m.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		conn.WriteMessage(websocket.TextMessage, notice)
		conn.Close()
		delete(m.clients, id)
	}
	return nil
}
