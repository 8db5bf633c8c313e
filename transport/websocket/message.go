package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

const (
	ActionMove  = "game:move"
	ActionLeave = "game:leave"
	ActionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload - either To or Direction must be set.
type MovePayload struct {
	Unit      string           `json:"unit"`
	From      *entity.Position `json:"from"`
	To        *entity.Position `json:"to,omitempty"`
	Direction string           `json:"direction,omitempty"`
}

type ErrorPayload struct {
	Action  string `json:"action,omitempty"`
	Message string `json:"message"`
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
