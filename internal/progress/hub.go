// Package progress streams per-lineup batch progress to WebSocket clients,
// adapted from the teacher's user-session chat hub (internal/websocket/hub.go)
// into a run-keyed broadcast: every client watching one optimization_id
// receives that run's Progress messages as they complete.
package progress

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/lineup-core/pkg/batch"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one WebSocket connection watching a single optimization run.
type Client struct {
	RunID string
	Conn  *websocket.Conn
	Send  chan []byte
	Hub   *Hub
}

// Hub fans out batch.Progress updates to every client watching the run they
// were registered under.
type Hub struct {
	clients     map[*Client]bool
	runClients  map[string][]*Client
	register    chan *Client
	unregister  chan *Client
	broadcast   chan runMessage
	logger      *logrus.Logger
	mutex       sync.RWMutex
}

type runMessage struct {
	runID   string
	payload []byte
}

// NewHub creates a new progress hub. Call Run in its own goroutine.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		runClients: make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan runMessage, 256),
		logger:     logger,
	}
}

// Run processes registration and broadcast events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.runClients[client.RunID] = append(h.runClients[client.RunID], client)
			h.mutex.Unlock()

			h.logger.WithFields(logrus.Fields{
				"optimization_id": client.RunID,
				"total_clients":   len(h.clients),
			}).Info("progress client connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClientLocked(client)
			h.mutex.Unlock()

		case msg := <-h.broadcast:
			h.mutex.Lock()
			var stale []*Client
			for _, client := range h.runClients[msg.runID] {
				select {
				case client.Send <- msg.payload:
				default:
					stale = append(stale, client)
				}
			}
			for _, client := range stale {
				h.removeClientLocked(client)
			}
			h.mutex.Unlock()
		}
	}
}

// removeClientLocked closes client's Send channel and drops it from both the
// global and per-run client sets. Callers must hold h.mutex for writing.
// Guarding on h.clients keeps a slow-consumer eviction from the broadcast
// case and a concurrent readPump disconnect from double-closing Send.
func (h *Hub) removeClientLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	peers := h.runClients[client.RunID]
	for i, c := range peers {
		if c == client {
			h.runClients[client.RunID] = append(peers[:i], peers[i+1:]...)
			break
		}
	}
	if len(h.runClients[client.RunID]) == 0 {
		delete(h.runClients, client.RunID)
	}
}

// HandleWebSocket upgrades a request to a WebSocket connection watching the
// run named by the :optimization_id path param.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	runID := c.Param("optimization_id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing optimization_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("failed to upgrade websocket connection")
		return
	}

	client := &Client{
		RunID: runID,
		Conn:  conn,
		Send:  make(chan []byte, 256),
		Hub:   h,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}

// Publish sends one batch.Progress update to every client watching runID.
func (h *Hub) Publish(runID string, p batch.Progress) {
	data, err := json.Marshal(p)
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal progress message")
		return
	}
	h.broadcast <- runMessage{runID: runID, payload: data}
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.WithError(err).Error("websocket read error")
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.Hub.logger.WithError(err).Error("failed to write websocket message")
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
