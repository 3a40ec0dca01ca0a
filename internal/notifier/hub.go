package notifier

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"hoteladmin/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Pending events per connection before the subscriber is dropped.
	sendBufferSize = 16

	// Pending broadcasts hub-wide; overflow is dropped, not queued.
	broadcastBufferSize = 64
)

// Hub maintains the set of connected websocket subscribers and pushes every
// broadcast to all of them. A single goroutine owns the client set, so no
// locking is needed around it.
type Hub struct {
	log *logger.Logger

	clients    map[*subscriber]struct{}
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan []byte
	done       chan struct{}

	upgrader websocket.Upgrader
}

type subscriber struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*subscriber]struct{}),
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan []byte, broadcastBufferSize),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The admin frontend is served from another origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set. Call it in its own goroutine before serving.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.clients[sub] = struct{}{}
			h.log.Info("Subscriber connected", "subscribers", len(h.clients))

		case sub := <-h.unregister:
			if _, ok := h.clients[sub]; ok {
				delete(h.clients, sub)
				close(sub.send)
				h.log.Info("Subscriber disconnected", "subscribers", len(h.clients))
			}

		case message := <-h.broadcast:
			for sub := range h.clients {
				select {
				case sub.send <- message:
				default:
					// Slow consumer: drop it rather than stall the hub.
					delete(h.clients, sub)
					close(sub.send)
					h.log.Warn("Dropped slow subscriber", "subscribers", len(h.clients))
				}
			}

		case <-h.done:
			for sub := range h.clients {
				delete(h.clients, sub)
				close(sub.send)
			}
			return
		}
	}
}

// Stop disconnects all subscribers and ends the Run loop.
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues an event for delivery to every connected subscriber.
// It never blocks the caller; when the hub is saturated the event is dropped
// and logged.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(Event{
		ID:        uuid.NewString(),
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.log.Error("Failed to encode event", "event", event, "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("Broadcast buffer full, event dropped", "event", event)
	}
}

// ServeWS upgrades an HTTP request to a websocket subscription.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("Websocket upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	sub := &subscriber{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- sub

	go sub.writePump()
	go sub.readPump()
}

// readPump discards inbound frames; the stream is server-to-client only.
// It exists to process control frames and detect closed connections.
func (s *subscriber) readPump() {
	defer func() {
		s.hub.unregister <- s
		s.conn.Close()
	}()

	s.conn.SetReadLimit(512)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
