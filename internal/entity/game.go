package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/herochess-backend/internal/apperror"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the authoritative state of one room.
type Game struct {
	ID     string           `json:"id"`
	Board  Board            `json:"board"`
	Units  map[string]*Unit `json:"-"`
	Turn   Seat             `json:"current_turn"`
	Status Status           `json:"status"`
	Winner Seat             `json:"winner,omitempty"`
	Moves  int              `json:"moves"`
}

// NewGame - creates a game with both sides on their home rows, A to move.
func NewGame(id string) *Game {
	game := &Game{
		ID:     id,
		Units:  make(map[string]*Unit, 2*BoardSize),
		Turn:   SeatA,
		Status: StatusWaiting,
	}

	homeRows := map[Seat]int{SeatA: 0, SeatB: BoardSize - 1}

	for _, seat := range Seats {
		for col, name := range StartingRank {
			unit := &Unit{
				ID:    UnitID(seat, name),
				Owner: seat,
				Type:  unitTypes[name],
			}

			game.Units[unit.ID] = unit
			game.Board.Set(Position{Row: homeRows[seat], Col: col}, unit.ID)
		}
	}

	return game
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// ConfirmOngoingState - only an ongoing game accepts moves.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsWaiting(), that.IsFinished():
		return apperror.ErrNotAcceptingMoves
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Unit - roster lookup; captured units stay in the roster.
func (that *Game) Unit(id string) (*Unit, bool) {
	unit, ok := that.Units[id]
	return unit, ok
}

// Finish - ends the game; the turn cursor is left where it was.
func (that *Game) Finish(winner Seat) {
	that.Status = StatusFinished
	that.Winner = winner
}

func (that *Game) Result(at time.Time) *GameResult {
	return &GameResult{
		RoomID:     that.ID,
		Winner:     that.Winner,
		Moves:      that.Moves,
		FinishedAt: at,
	}
}

// GameResult is the archived outcome of a finished game.
type GameResult struct {
	RoomID     string    `json:"room_id"`
	Winner     Seat      `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// ResultStats aggregates archived results.
type ResultStats struct {
	Wins   map[Seat]int  `json:"wins"`
	Recent []*GameResult `json:"recent"`
}

// RoomSummary is the lobby view of a room, without the board.
type RoomSummary struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Seats  []Seat `json:"seats"`
	Turn   Seat   `json:"current_turn,omitempty"`
	Winner Seat   `json:"winner,omitempty"`
	Moves  int    `json:"moves"`
}
