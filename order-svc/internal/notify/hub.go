package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultWriteWait = 5 * time.Second
	maxClientMessage = 512
	sendBuffer       = 16
)

// Frame is the wire shape of every pushed event.
type Frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to every connected admin client. Delivery is
// at-most-once: each client has a small queue drained by its own writer, and
// a client whose queue is full or whose write fails or times out is dropped.
// Broadcast never waits on a socket.
type Hub struct {
	mu        sync.Mutex
	clients   map[*client]struct{}
	writeWait time.Duration
	upgrader  websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		writeWait: defaultWriteWait,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) Broadcast(event string, payload interface{}) {
	frame, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		log.Printf("[order-svc] ws encode %s: %v", event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			log.Printf("[order-svc] ws subscriber too slow, dropping after %s", event)
			h.dropLocked(c)
		}
	}
}

// ServeWS upgrades the request and keeps the subscriber until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[order-svc] ws upgrade: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c)
	go h.readLoop(c)
}

func (h *Hub) writeLoop(c *client) {
	for frame := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
			h.remove(c)
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Printf("[order-svc] ws write: %v", err)
			h.remove(c)
			return
		}
	}
}

// readLoop discards client messages; it only exists to notice disconnects.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)
	c.conn.SetReadLimit(maxClientMessage)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// dropLocked must be called with h.mu held.
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.dropLocked(c)
	}
}
