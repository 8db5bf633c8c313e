package entity

type EventKind string

const (
	EventBoardSnapshot EventKind = "board:snapshot"
	EventMoveApplied   EventKind = "move:applied"
	EventMoveRejected  EventKind = "move:rejected"
	EventJoinRejected  EventKind = "join:rejected"
	EventGameOver      EventKind = "game:over"
	EventOpponentLeft  EventKind = "game:leave"
)

const StatusOpponentOut = "opponent_out"

// Event is an outbound notification from a session to one participant.
// Kind is carried by the transport envelope, not the payload.
type Event struct {
	Kind        EventKind `json:"-"`
	RoomID      string    `json:"room_id,omitempty"`
	Seat        Seat      `json:"seat,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	From        *Position `json:"from,omitempty"`
	To          *Position `json:"to,omitempty"`
	Captured    []string  `json:"captured,omitempty"`
	Board       *Board    `json:"board,omitempty"`
	CurrentTurn Seat      `json:"current_turn,omitempty"`
	Winner      Seat      `json:"winner,omitempty"`
	Status      string    `json:"status,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Message     string    `json:"message,omitempty"`
}

// NewBoardSnapshot - the state sent to a participant right after joining.
func NewBoardSnapshot(game *Game, seat Seat) *Event {
	board := game.Board

	return &Event{
		Kind:        EventBoardSnapshot,
		RoomID:      game.ID,
		Seat:        seat,
		Board:       &board,
		CurrentTurn: game.Turn,
		Status:      string(game.Status),
	}
}

// NewMoveEvent - move:applied for an ongoing game, game:over once it is finished.
func NewMoveEvent(game *Game, outcome *MoveOutcome) *Event {
	board := game.Board
	from, to := outcome.From, outcome.To

	event := &Event{
		Kind:     EventMoveApplied,
		RoomID:   game.ID,
		Unit:     outcome.Unit,
		From:     &from,
		To:       &to,
		Captured: outcome.Captured,
		Board:    &board,
		Status:   string(game.Status),
	}

	if outcome.Finished {
		event.Kind = EventGameOver
		event.Winner = outcome.Winner
		return event
	}

	event.CurrentTurn = outcome.Turn

	return event
}

func NewRejection(kind EventKind, roomID, reason, message string) *Event {
	return &Event{
		Kind:    kind,
		RoomID:  roomID,
		Reason:  reason,
		Message: message,
	}
}

func NewOpponentLeft(game *Game, seat Seat) *Event {
	return &Event{
		Kind:   EventOpponentLeft,
		RoomID: game.ID,
		Seat:   seat,
		Status: StatusOpponentOut,
	}
}
