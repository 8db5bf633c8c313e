package entity

// Participant is a seated connection; ID is the transport handle.
type Participant struct {
	ID   string `json:"id"`
	Seat Seat   `json:"seat"`
}

// MoveIntent is a move request as decoded by a transport. The acting seat is
// always that of the submitting participant.
type MoveIntent struct {
	Unit string   `json:"unit"`
	From Position `json:"from"`
	To   Position `json:"to"`
}

// MoveOutcome describes an accepted move.
type MoveOutcome struct {
	Unit     string   `json:"unit"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured []string `json:"captured,omitempty"`
	Turn     Seat     `json:"current_turn,omitempty"`
	Winner   Seat     `json:"winner,omitempty"`
	Finished bool     `json:"finished"`
}
