package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rocketscienceinc/herochess-backend/internal/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	alice = "alice"
	bob   = "bob"
)

type delivery struct {
	to    string
	event *entity.Event
}

// recordingSink keeps every delivered event in order.
type recordingSink struct {
	mu         sync.Mutex
	deliveries []delivery
}

func (that *recordingSink) Send(participantID string, event *entity.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.deliveries = append(that.deliveries, delivery{to: participantID, event: event})
}

func (that *recordingSink) To(participantID string) []*entity.Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	var events []*entity.Event
	for _, d := range that.deliveries {
		if d.to == participantID {
			events = append(events, d.event)
		}
	}

	return events
}

func (that *recordingSink) All() []delivery {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]delivery(nil), that.deliveries...)
}

func (that *recordingSink) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.deliveries = nil
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.GameResult) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startedSession - alice in seat A, bob in seat B, join traffic cleared.
func startedSession(t *testing.T) (*Session, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}
	session := NewSession(discardLogger(), sink, "room-1")

	seat, err := session.Join(alice)
	require.NoError(t, err)
	require.Equal(t, entity.SeatA, seat)

	seat, err = session.Join(bob)
	require.NoError(t, err)
	require.Equal(t, entity.SeatB, seat)

	sink.Reset()

	return session, sink
}

// placeUnits - replaces the board with the given layout.
func placeUnits(session *Session, layout map[string]entity.Position) {
	session.game.Board = entity.Board{}
	for id, p := range layout {
		session.game.Board.Set(p, id)
	}
}

func move(unit string, fromRow, fromCol, toRow, toCol int) entity.MoveIntent {
	return entity.MoveIntent{
		Unit: unit,
		From: entity.Position{Row: fromRow, Col: fromCol},
		To:   entity.Position{Row: toRow, Col: toCol},
	}
}

func at(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}
