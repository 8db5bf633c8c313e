package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/herochess-backend/internal/apperror"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
	"github.com/rocketscienceinc/herochess-backend/internal/rules"
)

// Sink delivers events to participants. Send must not block and must not
// panic; delivery failures stay inside the transport.
type Sink interface {
	Send(participantID string, event *entity.Event)
}

// Session is one room: its game and up to two seated participants. All state
// changes happen under mu.
type Session struct {
	logger *slog.Logger
	sink   Sink

	mu           sync.Mutex
	game         *entity.Game
	participants []*entity.Participant
}

func NewSession(logger *slog.Logger, sink Sink, roomID string) *Session {
	return &Session{
		logger: logger.With("component", "session", "roomID", roomID),
		sink:   sink,
		game:   entity.NewGame(roomID),
	}
}

func (that *Session) ID() string {
	return that.game.ID
}

// Join - seats a participant in the first free seat and sends it the board.
func (that *Session) Join(participantID string) (entity.Seat, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Join", "participantID", participantID)

	if p := that.participant(participantID); p != nil {
		that.sink.Send(participantID, entity.NewBoardSnapshot(that.game, p.Seat))
		return p.Seat, nil
	}

	seat := that.freeSeat()
	if seat == entity.SeatNone {
		that.reject(entity.EventJoinRejected, participantID, apperror.ErrRoomFull)
		return entity.SeatNone, fmt.Errorf("room %s: %w", that.game.ID, apperror.ErrRoomFull)
	}

	that.participants = append(that.participants, &entity.Participant{ID: participantID, Seat: seat})

	if that.game.IsWaiting() && len(that.participants) == len(entity.Seats) {
		that.game.Status = entity.StatusOngoing
	}

	that.sink.Send(participantID, entity.NewBoardSnapshot(that.game, seat))

	log.Info("participant joined", "seat", seat, "status", that.game.Status)

	return seat, nil
}

// SubmitMove - validates and applies a move of the participant's seat.
// A rejected move leaves the session untouched and is answered to the
// submitter only; an accepted move is broadcast to every seated participant.
func (that *Session) SubmitMove(participantID string, intent entity.MoveIntent) (*entity.MoveOutcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	outcome, err := that.applyMove(participantID, intent)
	if err != nil {
		that.reject(entity.EventMoveRejected, participantID, err)
		return nil, fmt.Errorf("room %s: %w", that.game.ID, err)
	}

	that.broadcast(entity.NewMoveEvent(that.game, outcome))

	that.logger.Debug("move applied",
		"unit", outcome.Unit, "from", outcome.From, "to", outcome.To,
		"captured", outcome.Captured, "finished", outcome.Finished)

	return outcome, nil
}

func (that *Session) applyMove(participantID string, intent entity.MoveIntent) (*entity.MoveOutcome, error) {
	p := that.participant(participantID)
	if p == nil {
		return nil, apperror.ErrNotSeated
	}

	if err := that.game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if p.Seat != that.game.Turn {
		return nil, apperror.ErrWrongTurn
	}

	board := &that.game.Board

	unit, ok := that.game.Unit(intent.Unit)
	if !ok || unit.Owner != p.Seat || !rules.InBounds(intent.From) || board.At(intent.From) != unit.ID {
		return nil, apperror.ErrUnitMismatch
	}

	if !rules.IsLegal(unit.Type, intent.From, intent.To) {
		return nil, apperror.ErrIllegalMove
	}

	if board.OwnerAt(intent.To) == p.Seat {
		return nil, apperror.ErrFriendlyOccupied
	}

	outcome := &entity.MoveOutcome{
		Unit: unit.ID,
		From: intent.From,
		To:   intent.To,
	}

	if rules.IsRanged(unit.Type) {
		if captured, hit := rules.ResolveCapture(board, p.Seat, intent.From, intent.To); hit {
			outcome.Captured = append(outcome.Captured, board.At(captured))
			board.Clear(captured)
		}
	}

	if victim := board.At(intent.To); victim != entity.EmptyCell {
		outcome.Captured = append(outcome.Captured, victim)
	}

	board.Clear(intent.From)
	board.Set(intent.To, unit.ID)
	that.game.Moves++

	if winner := rules.Winner(board, that.game.Units); winner != entity.SeatNone {
		that.game.Finish(winner)
		outcome.Winner = winner
		outcome.Finished = true

		that.logger.Info("game finished", "winner", winner, "moves", that.game.Moves)

		return outcome, nil
	}

	that.game.Turn = that.game.Turn.Opponent()
	outcome.Turn = that.game.Turn

	return outcome, nil
}

// Leave - removes a participant and returns the number still seated.
// An ongoing game goes back to waiting and the opponent is notified.
func (that *Session) Leave(participantID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Leave", "participantID", participantID)

	for i, p := range that.participants {
		if p.ID != participantID {
			continue
		}

		that.participants = append(that.participants[:i], that.participants[i+1:]...)

		if that.game.IsOngoing() {
			that.game.Status = entity.StatusWaiting
		}

		for _, other := range that.participants {
			that.sink.Send(other.ID, entity.NewOpponentLeft(that.game, p.Seat))
		}

		log.Info("participant left", "seat", p.Seat, "remaining", len(that.participants))

		break
	}

	return len(that.participants)
}

// Summary - lobby view of the session.
func (that *Session) Summary() entity.RoomSummary {
	that.mu.Lock()
	defer that.mu.Unlock()

	seats := make([]entity.Seat, 0, len(that.participants))
	for _, p := range that.participants {
		seats = append(seats, p.Seat)
	}

	summary := entity.RoomSummary{
		ID:     that.game.ID,
		Status: that.game.Status,
		Seats:  seats,
		Winner: that.game.Winner,
		Moves:  that.game.Moves,
	}

	if !that.game.IsFinished() {
		summary.Turn = that.game.Turn
	}

	return summary
}

// result - archive record of a finished game, nil otherwise.
func (that *Session) result(now time.Time) *entity.GameResult {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.game.IsFinished() {
		return nil
	}

	return that.game.Result(now)
}

func (that *Session) participant(id string) *entity.Participant {
	for _, p := range that.participants {
		if p.ID == id {
			return p
		}
	}

	return nil
}

func (that *Session) freeSeat() entity.Seat {
	for _, seat := range entity.Seats {
		taken := false
		for _, p := range that.participants {
			if p.Seat == seat {
				taken = true
				break
			}
		}

		if !taken {
			return seat
		}
	}

	return entity.SeatNone
}

func (that *Session) broadcast(event *entity.Event) {
	for _, p := range that.participants {
		that.sink.Send(p.ID, event)
	}
}

func (that *Session) reject(kind entity.EventKind, participantID string, err error) {
	that.sink.Send(participantID, entity.NewRejection(kind, that.game.ID, apperror.Reason(err), err.Error()))
}
