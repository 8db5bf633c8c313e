// Package rules holds the movement rules of the board. Everything here is
// pure: the board is passed in and never mutated.
package rules

import "github.com/rocketscienceinc/herochess-backend/internal/entity"

// Displacement is a relative move (rows, cols).
type Displacement struct {
	DRow int
	DCol int
}

// displacements is the single source of truth for legal moves. Pawns step one
// cell orthogonally, Hero1 jumps two cells orthogonally, Hero2 steps one cell
// diagonally.
var displacements = map[entity.UnitType][]Displacement{
	entity.Pawn: {
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	},
	entity.Hero1: {
		{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	},
	entity.Hero2: {
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	},
}

var ranged = map[entity.UnitType]bool{
	entity.Hero1: true,
	entity.Hero2: true,
}

// Displacements - legal displacements of a unit type.
func Displacements(unitType entity.UnitType) []Displacement {
	return append([]Displacement(nil), displacements[unitType]...)
}

// IsRanged - whether moves of this type resolve an attack path.
func IsRanged(unitType entity.UnitType) bool {
	return ranged[unitType]
}

// Reach - number of cells a unit type covers per move.
func Reach(unitType entity.UnitType) int {
	reach := 0
	for _, d := range displacements[unitType] {
		reach = max(reach, abs(d.DRow), abs(d.DCol))
	}

	return reach
}

func InBounds(p entity.Position) bool {
	return p.Row >= 0 && p.Row < entity.BoardSize && p.Col >= 0 && p.Col < entity.BoardSize
}

// IsLegal - checks bounds and the displacement table. Occupancy is not
// considered here.
func IsLegal(unitType entity.UnitType, from, to entity.Position) bool {
	if !InBounds(from) || !InBounds(to) {
		return false
	}

	moved := Displacement{DRow: to.Row - from.Row, DCol: to.Col - from.Col}
	for _, d := range displacements[unitType] {
		if d == moved {
			return true
		}
	}

	return false
}

// AttackPath - cells strictly between from and to, walking unit steps.
// Empty unless from and to share a row, column or diagonal.
func AttackPath(from, to entity.Position) []entity.Position {
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return nil
	}

	stepRow, stepCol := sign(dRow), sign(dCol)

	var path []entity.Position
	for p := from.Add(stepRow, stepCol); p != to; p = p.Add(stepRow, stepCol) {
		path = append(path, p)
	}

	return path
}

// ResolveCapture - scans the attack path for the first occupied cell. An enemy
// there is reported as captured; a friendly unit stops the scan silently. The
// destination cell is never inspected.
func ResolveCapture(board *entity.Board, mover entity.Seat, from, to entity.Position) (entity.Position, bool) {
	for _, p := range AttackPath(from, to) {
		owner := board.OwnerAt(p)
		if owner == entity.SeatNone {
			continue
		}

		return p, owner != mover
	}

	return entity.Position{}, false
}

// Winner - the seat whose opponent has no roster unit left on the board.
// SeatNone while both sides survive.
func Winner(board *entity.Board, units map[string]*entity.Unit) entity.Seat {
	alive := make(map[entity.Seat]bool, len(entity.Seats))

	for id, unit := range units {
		if _, ok := board.Find(id); ok {
			alive[unit.Owner] = true
		}
	}

	aliveA, aliveB := alive[entity.SeatA], alive[entity.SeatB]

	switch {
	case aliveA && !aliveB:
		return entity.SeatA
	case aliveB && !aliveA:
		return entity.SeatB
	default:
		return entity.SeatNone
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
