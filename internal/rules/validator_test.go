package rules

import (
	"testing"

	"github.com/rocketscienceinc/herochess-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

func TestIsLegal(t *testing.T) {
	center := pos(2, 2)

	tests := []struct {
		name     string
		unitType entity.UnitType
		to       entity.Position
		legal    bool
	}{
		{"pawn forward", entity.Pawn, pos(3, 2), true},
		{"pawn sideways", entity.Pawn, pos(2, 1), true},
		{"pawn diagonal", entity.Pawn, pos(3, 3), false},
		{"pawn two cells", entity.Pawn, pos(4, 2), false},
		{"pawn stays", entity.Pawn, center, false},
		{"hero1 two up", entity.Hero1, pos(0, 2), true},
		{"hero1 two right", entity.Hero1, pos(2, 4), true},
		{"hero1 one cell", entity.Hero1, pos(2, 3), false},
		{"hero1 diagonal", entity.Hero1, pos(4, 4), false},
		{"hero2 diagonal", entity.Hero2, pos(1, 1), true},
		{"hero2 anti-diagonal", entity.Hero2, pos(3, 1), true},
		{"hero2 orthogonal", entity.Hero2, pos(2, 3), false},
		{"hero2 two diagonal", entity.Hero2, pos(4, 4), false},
		{"unknown type", entity.UnitType("H3"), pos(3, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, IsLegal(tt.unitType, center, tt.to))
		})
	}

	t.Run("Destination off the board is illegal", func(t *testing.T) {
		assert.False(t, IsLegal(entity.Pawn, pos(0, 0), pos(-1, 0)))
		assert.False(t, IsLegal(entity.Hero1, pos(4, 3), pos(4, 5)))
		assert.False(t, IsLegal(entity.Hero2, pos(4, 4), pos(5, 5)))
	})
}

func TestReach(t *testing.T) {
	assert.Equal(t, 1, Reach(entity.Pawn))
	assert.Equal(t, 2, Reach(entity.Hero1))
	assert.Equal(t, 1, Reach(entity.Hero2))
	assert.Equal(t, 0, Reach(entity.UnitType("X")))
}

func TestIsRanged(t *testing.T) {
	assert.False(t, IsRanged(entity.Pawn))
	assert.True(t, IsRanged(entity.Hero1))
	assert.True(t, IsRanged(entity.Hero2))
}

func TestDisplacements_ReturnsCopy(t *testing.T) {
	d := Displacements(entity.Pawn)
	d[0] = Displacement{DRow: 4, DCol: 4}

	assert.NotContains(t, Displacements(entity.Pawn), Displacement{DRow: 4, DCol: 4})
}

func TestAttackPath(t *testing.T) {
	t.Run("Straight line of two has one intermediate cell", func(t *testing.T) {
		assert.Equal(t, []entity.Position{pos(0, 1)}, AttackPath(pos(0, 0), pos(0, 2)))
		assert.Equal(t, []entity.Position{pos(3, 4)}, AttackPath(pos(4, 4), pos(2, 4)))
	})

	t.Run("Longer diagonal walks unit steps", func(t *testing.T) {
		assert.Equal(t, []entity.Position{pos(1, 1), pos(2, 2)}, AttackPath(pos(0, 0), pos(3, 3)))
	})

	t.Run("Adjacent cells have no path", func(t *testing.T) {
		assert.Empty(t, AttackPath(pos(1, 1), pos(2, 2)))
		assert.Empty(t, AttackPath(pos(1, 1), pos(1, 2)))
	})

	t.Run("Knight-like offsets have no path", func(t *testing.T) {
		assert.Empty(t, AttackPath(pos(0, 0), pos(2, 1)))
	})
}

func TestResolveCapture(t *testing.T) {
	t.Run("Enemy on the path is captured", func(t *testing.T) {
		// Given: A's hero1 at (0,0) and B's pawn at (0,1)
		var board entity.Board
		board.Set(pos(0, 0), "A-H1")
		board.Set(pos(0, 1), "B-P1")

		// When: resolving a move to (0,2)
		captured, ok := ResolveCapture(&board, entity.SeatA, pos(0, 0), pos(0, 2))

		// Then: the pawn is reported as captured
		require.True(t, ok)
		assert.Equal(t, pos(0, 1), captured)
	})

	t.Run("Friendly unit blocks silently", func(t *testing.T) {
		var board entity.Board
		board.Set(pos(0, 0), "A-H1")
		board.Set(pos(0, 1), "A-P2")

		_, ok := ResolveCapture(&board, entity.SeatA, pos(0, 0), pos(0, 2))

		assert.False(t, ok)
	})

	t.Run("Only the first occupant is considered", func(t *testing.T) {
		// Given: a friendly unit before an enemy on a long diagonal
		var board entity.Board
		board.Set(pos(1, 1), "A-P1")
		board.Set(pos(2, 2), "B-P1")

		// When: resolving the path
		_, ok := ResolveCapture(&board, entity.SeatA, pos(0, 0), pos(3, 3))

		// Then: the scan stops at the friendly unit
		assert.False(t, ok)

		// And: with the roles swapped only the first enemy is captured
		board.Set(pos(1, 1), "B-P2")
		captured, ok := ResolveCapture(&board, entity.SeatA, pos(0, 0), pos(3, 3))
		require.True(t, ok)
		assert.Equal(t, pos(1, 1), captured)
	})

	t.Run("Destination is never inspected", func(t *testing.T) {
		var board entity.Board
		board.Set(pos(0, 0), "A-H1")
		board.Set(pos(0, 2), "B-P1")

		_, ok := ResolveCapture(&board, entity.SeatA, pos(0, 0), pos(0, 2))

		assert.False(t, ok)
	})
}

func TestWinner(t *testing.T) {
	units := entity.NewGame("x").Units

	t.Run("No winner while both sides have units", func(t *testing.T) {
		board := entity.NewGame("x").Board
		assert.Equal(t, entity.SeatNone, Winner(&board, units))
	})

	t.Run("A wins when B has no unit on the board", func(t *testing.T) {
		var board entity.Board
		board.Set(pos(2, 2), "A-H2")

		assert.Equal(t, entity.SeatA, Winner(&board, units))
	})

	t.Run("B wins when A has no unit on the board", func(t *testing.T) {
		var board entity.Board
		board.Set(pos(0, 4), "B-P3")

		assert.Equal(t, entity.SeatB, Winner(&board, units))
	})
}
