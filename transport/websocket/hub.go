package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/herochess-backend/internal/config"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

// Hub keeps the connected clients by participant id and delivers events to
// them. Delivery never blocks: a client whose queue is full loses the event.
type Hub struct {
	logger *slog.Logger
	conf   config.Socket

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger, conf config.Socket) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		conf:    conf,
		clients: make(map[string]*client),
	}
}

// Send - queues an event for a participant; unknown participants are ignored.
func (that *Hub) Send(participantID string, event *entity.Event) {
	that.send(participantID, string(event.Kind), event)
}

func (that *Hub) send(participantID, action string, payload any) {
	log := that.logger.With("method", "send", "participantID", participantID, "action", action)

	data, err := encode(action, payload)
	if err != nil {
		log.Error("failed to encode message", "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	c, ok := that.clients[participantID]
	if !ok {
		log.Debug("participant is not connected")
		return
	}

	select {
	case c.send <- data:
	default:
		log.Warn("send queue is full, message dropped")
	}
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c

	that.logger.Debug("client registered", "participantID", c.id, "roomID", c.roomID, "clients", len(that.clients))
}

// unregister - closes the client's queue; its writer flushes what is left
// and then closes the connection.
func (that *Hub) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if current, ok := that.clients[c.id]; !ok || current != c {
		return
	}

	delete(that.clients, c.id)
	close(c.send)

	that.logger.Debug("client unregistered", "participantID", c.id, "roomID", c.roomID, "clients", len(that.clients))
}

func (that *Hub) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// Close - disconnects every client.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, c := range that.clients {
		close(c.send)
	}

	clear(that.clients)
}
