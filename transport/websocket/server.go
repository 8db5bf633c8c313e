package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

const roomIDParam = "roomId"

var errClientLeft = errors.New("client left the room")

type sessionRegistry interface {
	Join(ctx context.Context, roomID, participantID string) (entity.Seat, error)
	SubmitMove(ctx context.Context, roomID, participantID string, intent entity.MoveIntent) (*entity.MoveOutcome, error)
	Leave(ctx context.Context, roomID, participantID string)
}

type handlerFunc func(ctx context.Context, c *client, message *Message) error

type Server struct {
	logger   *slog.Logger
	registry sessionRegistry
	hub      *Hub
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, registry sessionRegistry, hub *Hub) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		registry: registry,
		hub:      hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionMove] = server.handleMove
	server.handlers[ActionLeave] = server.handleLeave

	return server
}

// Start - starts WebSocket server; it stops when ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		that.hub.Close()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP - upgrades the connection and seats the client in the room named
// by the roomId query parameter.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	roomID := req.URL.Query().Get(roomIDParam)
	ctx := req.Context()

	c := newClient(that.logger, that.hub.conf, conn, roomID)
	that.hub.register(c)

	go c.writePump()

	seat, err := that.registry.Join(ctx, roomID, c.id)
	if err != nil {
		// the rejection is already queued; closing the queue flushes it
		log.Info("join rejected", "roomID", roomID, "error", err)
		that.hub.unregister(c)
		return
	}

	c.seat = seat

	log.Info("WebSocket connection established", "roomID", roomID, "participantID", c.id, "seat", seat)

	defer func() {
		that.registry.Leave(ctx, roomID, c.id)
		that.hub.unregister(c)
	}()

	if err = that.handleMessages(ctx, c); err != nil {
		log.Debug("connection closed", "participantID", c.id, "reason", err)
	}
}

// handleMessages - processes messages from the client until it disconnects or leaves.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "participantID", c.id)

	c.prepareRead()

	for {
		data, err := c.readMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}

			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(c, "", "malformed message")

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			if errors.Is(err, errClientLeft) {
				return err
			}

			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendError(c *client, action, message string) {
	that.hub.send(c.id, ActionError, ErrorPayload{Action: action, Message: message})
}
