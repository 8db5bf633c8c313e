package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/herochess-backend/internal/apperror"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// SessionRegistry owns every live session, keyed by room id. It is built
// once by the application and torn down with Close.
type SessionRegistry struct {
	logger  *slog.Logger
	sink    Sink
	results resultRepo
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionRegistry - results may be nil, finished games are then not archived.
func NewSessionRegistry(logger *slog.Logger, sink Sink, results resultRepo) *SessionRegistry {
	return &SessionRegistry{
		logger:   logger.With("component", "registry"),
		sink:     sink,
		results:  results,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreateSession - returns the live session of a room, creating it first if needed.
func (that *SessionRegistry) GetOrCreateSession(roomID string) (*Session, error) {
	if roomID == "" {
		return nil, apperror.ErrMissingRoomID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getOrCreate(roomID), nil
}

func (that *SessionRegistry) getOrCreate(roomID string) *Session {
	session, ok := that.sessions[roomID]
	if !ok {
		session = NewSession(that.logger, that.sink, roomID)
		that.sessions[roomID] = session

		that.logger.Info("session created", "roomID", roomID)
	}

	return session
}

// Join - seats a participant in a room. Rejections are also sent to the
// participant, the caller is expected to close its connection.
func (that *SessionRegistry) Join(_ context.Context, roomID, participantID string) (entity.Seat, error) {
	if roomID == "" {
		err := apperror.ErrMissingRoomID
		that.sink.Send(participantID, entity.NewRejection(entity.EventJoinRejected, roomID, apperror.Reason(err), err.Error()))

		return entity.SeatNone, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	session := that.getOrCreate(roomID)

	seat, err := session.Join(participantID)
	if err != nil {
		return entity.SeatNone, fmt.Errorf("failed to join: %w", err)
	}

	return seat, nil
}

// SubmitMove - forwards a move to the room's session. Finished games are
// archived once the session lock has been released.
func (that *SessionRegistry) SubmitMove(ctx context.Context, roomID, participantID string, intent entity.MoveIntent) (*entity.MoveOutcome, error) {
	session, err := that.lookup(roomID)
	if err != nil {
		that.sink.Send(participantID, entity.NewRejection(entity.EventMoveRejected, roomID, apperror.Reason(err), err.Error()))
		return nil, err
	}

	outcome, err := session.SubmitMove(participantID, intent)
	if err != nil {
		return nil, fmt.Errorf("failed to submit move: %w", err)
	}

	if outcome.Finished {
		that.archive(ctx, session)
	}

	return outcome, nil
}

// Leave - removes a participant; the last one out destroys the session.
func (that *SessionRegistry) Leave(_ context.Context, roomID, participantID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[roomID]
	if !ok {
		return
	}

	if session.Leave(participantID) == 0 {
		delete(that.sessions, roomID)

		that.logger.Info("session destroyed", "roomID", roomID)
	}
}

// Room - lobby summary of a live room.
func (that *SessionRegistry) Room(roomID string) (entity.RoomSummary, error) {
	session, err := that.lookup(roomID)
	if err != nil {
		return entity.RoomSummary{}, err
	}

	return session.Summary(), nil
}

func (that *SessionRegistry) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}

// Close - drops every session; called on shutdown.
func (that *SessionRegistry) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.logger.Info("closing registry", "sessions", len(that.sessions))

	clear(that.sessions)
}

func (that *SessionRegistry) lookup(roomID string) (*Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrRoomNotFound, roomID)
	}

	return session, nil
}

func (that *SessionRegistry) archive(ctx context.Context, session *Session) {
	log := that.logger.With("method", "archive", "roomID", session.ID())

	if that.results == nil {
		return
	}

	result := session.result(that.now())
	if result == nil {
		return
	}

	if err := that.results.Save(ctx, result); err != nil {
		log.Error("failed to save game result", "error", err)
		return
	}

	log.Info("game result saved", "winner", result.Winner)
}
