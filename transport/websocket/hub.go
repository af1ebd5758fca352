package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/inconshreveable/log15/v3"

	"github.com/katalvlaran/shortway/events"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Outgoing messages buffered per client before it is dropped.
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is one outgoing notification.
type Message struct {
	Scene string `json:"scene,omitempty"`
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Client is one websocket connection.
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	scene string
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by scene name; "" holds clients of every scene.
	scenes map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client

	done     chan struct{}
	stopOnce sync.Once
	clients  atomic.Int64
	logger   log.Logger
}

// Option customizes a Hub.
type Option func(*Hub)

// WithLogger logs connection changes to l. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("websocket: WithLogger(nil)")
	}

	return func(h *Hub) { h.logger = l.New("module", "websocket") }
}

// NewHub creates a new WebSocket hub
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		scenes:     make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = log.New()
		h.logger.SetHandler(log.DiscardHandler())
	}

	return h
}

// Run starts the hub's event loop. It returns after Stop, once every client
// has been told to close.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-h.done:
			for _, clients := range h.scenes {
				for client := range clients {
					h.unregisterClient(client)
				}
			}
			return
		}
	}
}

// Stop ends Run. Later Broadcast calls are dropped.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int { return int(h.clients.Load()) }

// ServeWS upgrades the request and registers the connection for scene.
// An empty scene receives the messages of every scene.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, scene string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := &Client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		scene: scene,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Broadcast queues event for the clients of scene.
func (h *Hub) Broadcast(scene, event string, data any) {
	select {
	case h.broadcast <- &Message{Scene: scene, Event: event, Data: data}:
	case <-h.done:
	}
}

// Subscribe forwards every event published on bus to the hub's clients.
func (h *Hub) Subscribe(bus *events.Bus) {
	bus.OnPathFound(func(e events.PathFound) {
		h.Broadcast(e.Scene, events.NamePathFound, e)
	})
	bus.OnTraversalComplete(func(e events.TraversalComplete) {
		h.Broadcast(e.Scene, events.NameTraversalComplete, e)
	})
}

func (h *Hub) registerClient(client *Client) {
	if h.scenes[client.scene] == nil {
		h.scenes[client.scene] = make(map[*Client]bool)
	}
	h.scenes[client.scene][client] = true
	h.clients.Add(1)

	h.logger.Debug("client registered", "scene", client.scene, "clients", len(h.scenes[client.scene]))
}

func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.scenes[client.scene]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	h.clients.Add(-1)

	if len(clients) == 0 {
		delete(h.scenes, client.scene)
	}

	h.logger.Debug("client unregistered", "scene", client.scene, "remaining", len(clients))
}

// broadcastMessage delivers to the message's scene and to clients of every
// scene. A message without a scene goes to everyone.
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Warn("marshal broadcast message", "event", message.Event, "err", err)
		return
	}

	var targets []*Client
	for scene, clients := range h.scenes {
		if message.Scene != "" && scene != "" && scene != message.Scene {
			continue
		}
		for client := range clients {
			targets = append(targets, client)
		}
	}
	for _, client := range targets {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("client too slow, dropping", "scene", client.scene)
			h.unregisterClient(client)
		}
	}
}

// readPump keeps the read side alive for pongs and close frames. Incoming
// messages are discarded.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read", "scene", c.scene, "err", err)
			}
			return
		}
	}
}

// writePump sends one frame per message, plus periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
