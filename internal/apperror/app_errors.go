package apperror

import "errors"

// join errors.
var (
	ErrMissingRoomID = errors.New("room id is required")
	ErrRoomFull      = errors.New("room is full")
)

// move errors.
var (
	ErrWrongTurn         = errors.New("it's not your turn")
	ErrUnitMismatch      = errors.New("unit does not match the origin cell")
	ErrIllegalMove       = errors.New("illegal move")
	ErrFriendlyOccupied  = errors.New("destination is occupied by a friendly unit")
	ErrNotAcceptingMoves = errors.New("game is not accepting moves")
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotSeated    = errors.New("participant is not seated in this room")
)

// Wire reasons, as sent to clients in rejection events.
const (
	ReasonMissingRoomID     = "MissingRoomId"
	ReasonRoomFull          = "RoomFull"
	ReasonWrongTurn         = "WrongTurn"
	ReasonUnitMismatch      = "UnitMismatch"
	ReasonIllegalMove       = "IllegalMove"
	ReasonFriendlyOccupied  = "FriendlyOccupied"
	ReasonNotAcceptingMoves = "NotAcceptingMoves"
	ReasonRoomNotFound      = "RoomNotFound"
	ReasonNotSeated         = "NotSeated"
	ReasonInternal          = "Internal"
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrMissingRoomID, ReasonMissingRoomID},
	{ErrRoomFull, ReasonRoomFull},
	{ErrWrongTurn, ReasonWrongTurn},
	{ErrUnitMismatch, ReasonUnitMismatch},
	{ErrIllegalMove, ReasonIllegalMove},
	{ErrFriendlyOccupied, ReasonFriendlyOccupied},
	{ErrNotAcceptingMoves, ReasonNotAcceptingMoves},
	{ErrRoomNotFound, ReasonRoomNotFound},
	{ErrNotSeated, ReasonNotSeated},
}

// Reason - maps an error onto the reason string clients receive.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}

	return ReasonInternal
}
