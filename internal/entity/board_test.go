package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("Set, At and Clear", func(t *testing.T) {
		var board Board
		p := Position{Row: 2, Col: 3}

		board.Set(p, "B-H2")
		assert.Equal(t, "B-H2", board.At(p))
		assert.Equal(t, SeatB, board.OwnerAt(p))
		assert.Equal(t, 1, board.Count())

		board.Clear(p)
		assert.Equal(t, EmptyCell, board.At(p))
		assert.Equal(t, SeatNone, board.OwnerAt(p))
		assert.Equal(t, 0, board.Count())
	})

	t.Run("Off-board cells read as empty", func(t *testing.T) {
		board := NewGame("x").Board

		assert.Equal(t, EmptyCell, board.At(Position{Row: -1, Col: 0}))
		assert.Equal(t, EmptyCell, board.At(Position{Row: 0, Col: BoardSize}))
	})

	t.Run("Find locates a unit", func(t *testing.T) {
		board := NewGame("x").Board

		p, ok := board.Find("B-H1")
		require.True(t, ok)
		assert.Equal(t, Position{Row: 4, Col: 2}, p)

		_, ok = board.Find("B-H3")
		assert.False(t, ok)
	})
}

func TestParseUnitID(t *testing.T) {
	tests := []struct {
		id       string
		expected Unit
	}{
		{"A-P1", Unit{ID: "A-P1", Owner: SeatA, Type: Pawn}},
		{"A-P3", Unit{ID: "A-P3", Owner: SeatA, Type: Pawn}},
		{"B-H1", Unit{ID: "B-H1", Owner: SeatB, Type: Hero1}},
		{"B-H2", Unit{ID: "B-H2", Owner: SeatB, Type: Hero2}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			unit, err := ParseUnitID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, unit)
		})
	}

	for _, id := range []string{"", "AP1", "C-P1", "A-H3", "A-"} {
		t.Run("invalid "+id, func(t *testing.T) {
			_, err := ParseUnitID(id)
			assert.ErrorIs(t, err, ErrInvalidUnitID)
		})
	}
}

func TestSeat_Opponent(t *testing.T) {
	assert.Equal(t, SeatB, SeatA.Opponent())
	assert.Equal(t, SeatA, SeatB.Opponent())
	assert.Equal(t, SeatNone, SeatNone.Opponent())
}
