package websocket

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/herochess-backend/internal/config"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

// client is one websocket connection. Its id is the participant id used by
// the sessions.
type client struct {
	logger *slog.Logger
	conf   config.Socket

	id     string
	roomID string
	seat   entity.Seat

	conn *websocket.Conn
	send chan []byte
}

func newClient(logger *slog.Logger, conf config.Socket, conn *websocket.Conn, roomID string) *client {
	id := uuid.NewString()

	return &client{
		logger: logger.With("participantID", id, "roomID", roomID),
		conf:   conf,
		id:     id,
		roomID: roomID,
		conn:   conn,
		send:   make(chan []byte, conf.SendBuffer),
	}
}

// prepareRead - sets the read limit and keeps the read deadline moving on pongs.
func (that *client) prepareRead() {
	that.conn.SetReadLimit(that.conf.MaxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	})
}

func (that *client) readMessage() ([]byte, error) {
	_, data, err := that.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	return data, nil
}

// writePump - the only writer of the connection. It returns once the queue is
// closed or a write fails.
func (that *client) writePump() {
	ticker := time.NewTicker(that.conf.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				_ = that.conn.WriteMessage(websocket.CloseMessage, closeMsg)
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
