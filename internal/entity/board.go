package entity

const (
	BoardSize = 5

	EmptyCell = ""
)

// Position is a cell coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Add(dRow, dCol int) Position {
	return Position{Row: that.Row + dRow, Col: that.Col + dCol}
}

// Board holds unit ids by cell, EmptyCell for a free cell.
type Board [BoardSize][BoardSize]string

func (that *Board) contains(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// At - returns the unit id at p, EmptyCell for a free or off-board cell.
func (that *Board) At(p Position) string {
	if !that.contains(p) {
		return EmptyCell
	}

	return that[p.Row][p.Col]
}

func (that *Board) Set(p Position, unitID string) {
	that[p.Row][p.Col] = unitID
}

func (that *Board) Clear(p Position) {
	that[p.Row][p.Col] = EmptyCell
}

// OwnerAt - returns the seat owning the unit at p, SeatNone for a free cell.
func (that *Board) OwnerAt(p Position) Seat {
	id := that.At(p)
	if id == EmptyCell {
		return SeatNone
	}

	return OwnerOf(id)
}

// Find - locates a unit on the board.
func (that *Board) Find(unitID string) (Position, bool) {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == unitID {
				return Position{Row: row, Col: col}, true
			}
		}
	}

	return Position{}, false
}

// Count - number of occupied cells.
func (that *Board) Count() int {
	n := 0
	for row := range that {
		for col := range that[row] {
			if that[row][col] != EmptyCell {
				n++
			}
		}
	}

	return n
}
