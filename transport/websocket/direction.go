package websocket

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/herochess-backend/internal/entity"
	"github.com/rocketscienceinc/herochess-backend/internal/rules"
)

var ErrUnknownDirection = errors.New("unknown direction")

// directions as seen by seat B, whose forward is towards row 0. Seat A sits
// on the opposite side and gets them rotated by half a turn.
var directions = map[string]rules.Displacement{
	"F":  {DRow: -1, DCol: 0},
	"B":  {DRow: 1, DCol: 0},
	"L":  {DRow: 0, DCol: -1},
	"R":  {DRow: 0, DCol: 1},
	"FL": {DRow: -1, DCol: -1},
	"FR": {DRow: -1, DCol: 1},
	"BL": {DRow: 1, DCol: -1},
	"BR": {DRow: 1, DCol: 1},
}

// Destination - target cell of a seat-relative direction, scaled by the reach
// of the unit. Legality is left to the engine.
func Destination(seat entity.Seat, unitID string, from entity.Position, direction string) (entity.Position, error) {
	d, ok := directions[strings.ToUpper(direction)]
	if !ok {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	unit, err := entity.ParseUnitID(unitID)
	if err != nil {
		return entity.Position{}, err
	}

	if seat == entity.SeatA {
		d.DRow, d.DCol = -d.DRow, -d.DCol
	}

	reach := rules.Reach(unit.Type)

	return from.Add(d.DRow*reach, d.DCol*reach), nil
}
