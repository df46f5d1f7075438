package chat

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Message is the wire format for both directions of the chat channel.
type Message struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Message types on the chat channel.
const (
	TypeUserMessage    = "user_message"
	TypeAssistant      = "ai_message"
	TypeSupportRequest = "support_request"
	TypeSupportAck     = "support_message"
)

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan Message
}

// Hub owns the chat connection registry. Each connection is independent:
// a user message is echoed back immediately, then answered with a scripted
// reply after a fixed delay. There is no broadcast between connections.
type Hub struct {
	mu       sync.Mutex
	clients  map[uuid.UUID]*client
	delay    time.Duration
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewHub creates a hub whose scripted replies are sent after delay.
func NewHub(delay time.Duration, logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*client),
		delay:   delay,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS upgrades the request and serves the connection until the peer
// closes it.
func (h *Hub) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan Message, 16),
	}
	h.register(cl)
	h.logger.Info("chat client connected", zap.String("clientId", cl.id.String()))

	go cl.writePump()
	h.readPump(cl)

	h.unregister(cl)
	_ = conn.Close()
	h.logger.Info("chat client disconnected", zap.String("clientId", cl.id.String()))
	return nil
}

// ActiveConnections returns the number of open chat connections.
func (h *Hub) ActiveConnections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[cl.id] = cl
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl.id]; ok {
		delete(h.clients, cl.id)
		close(cl.send)
	}
}

func (h *Hub) readPump(cl *client) {
	for {
		var msg Message
		if err := cl.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case TypeUserMessage:
			// Echo the message back, then answer after the scripted delay.
			h.deliver(cl.id, msg)
			question := msg.Message
			time.AfterFunc(h.delay, func() {
				h.deliver(cl.id, Message{
					Type:      TypeAssistant,
					Message:   Respond(question),
					Timestamp: time.Now().Format(time.RFC3339),
				})
			})
		case TypeSupportRequest:
			h.deliver(cl.id, Message{
				Type:      TypeSupportAck,
				Message:   supportAck,
				Timestamp: time.Now().Format(time.RFC3339),
			})
		}
	}
}

// deliver queues a message for a client if it is still registered. A full
// send buffer drops the message; the channel has no backpressure.
func (h *Hub) deliver(id uuid.UUID, msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl, ok := h.clients[id]
	if !ok {
		return
	}
	select {
	case cl.send <- msg:
	default:
	}
}

func (cl *client) writePump() {
	for msg := range cl.send {
		if err := cl.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
