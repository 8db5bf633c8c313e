package websocket

import (
	"context"
	"encoding/json"

	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

// handleMove - decodes a move intent and submits it for the client's seat.
// Engine rejections reach the client through the hub as move:rejected.
func (that *Server) handleMove(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleMove", "participantID", c.id)

	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(c, msg.Action, "malformed move payload")
		return nil
	}

	if payload.Unit == "" || payload.From == nil {
		that.sendError(c, msg.Action, "unit and from are required")
		return nil
	}

	intent := entity.MoveIntent{
		Unit: payload.Unit,
		From: *payload.From,
	}

	switch {
	case payload.To != nil:
		intent.To = *payload.To
	case payload.Direction != "":
		to, err := Destination(c.seat, payload.Unit, *payload.From, payload.Direction)
		if err != nil {
			that.sendError(c, msg.Action, err.Error())
			return nil
		}

		intent.To = to
	default:
		that.sendError(c, msg.Action, "to or direction is required")
		return nil
	}

	if _, err := that.registry.SubmitMove(ctx, c.roomID, c.id, intent); err != nil {
		log.Debug("move rejected", "unit", intent.Unit, "error", err)
	}

	return nil
}

func (that *Server) handleLeave(_ context.Context, c *client, _ *Message) error {
	that.logger.Info("client left", "participantID", c.id, "roomID", c.roomID)

	return errClientLeft
}
