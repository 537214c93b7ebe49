package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	json "github.com/goccy/go-json"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// writeTimeout bounds how long a single frame write may block
const writeTimeout = 5 * time.Second

// sendBufferSize frames queued per client before new events are dropped
const sendBufferSize = 32

// LiveEvent is the message broadcast to connected websocket clients
type LiveEvent struct {
	Type      string      `json:"type"`
	GuildID   string      `json:"guildId,omitempty"`
	UserID    string      `json:"userId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// liveClient pairs a connection with its outbound queue. All frames go
// through the queue and are written by a single goroutine per client; the
// connection itself never sees concurrent writers.
type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHub fans out bot events to websocket subscribers
type LiveHub struct {
	mu      sync.RWMutex
	clients map[*liveClient]bool

	upgrader websocket.Upgrader
}

// NewLiveHub creates an empty hub
func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients: make(map[*liveClient]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and registers the client
func (h *LiveHub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error al actualizar conexión websocket: %v", err), "WebServer")
		return
	}

	client := &liveClient{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	h.clients[client] = true
	count := len(h.clients)
	h.mu.Unlock()

	logger.Info(fmt.Sprintf("Nuevo cliente websocket conectado (%d activos)", count), "WebServer")

	go h.writeLoop(client)

	// Drain incoming frames until the client disconnects
	go func() {
		defer h.remove(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// writeLoop is the only writer of the client's connection
func (h *LiveHub) writeLoop(client *liveClient) {
	defer h.remove(client)
	for payload := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// ClientCount returns the number of connected clients
func (h *LiveHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues an event for every connected client. A client whose
// queue is full drops the frame instead of blocking the caller.
func (h *LiveHub) Broadcast(eventType, guildID, userID string, data interface{}) {
	event := LiveEvent{
		Type:      eventType,
		GuildID:   guildID,
		UserID:    userID,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}

// remove unregisters a client. Safe to call from both the reader and the
// writer; only the first call closes the queue and the connection.
func (h *LiveHub) remove(client *liveClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		client.conn.Close()
	}
	h.mu.Unlock()
}
