package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Seat string

const (
	SeatNone Seat = ""
	SeatA    Seat = "A"
	SeatB    Seat = "B"
)

// Seats in join order.
var Seats = [2]Seat{SeatA, SeatB}

func (that Seat) IsValid() bool {
	return that == SeatA || that == SeatB
}

func (that Seat) Opponent() Seat {
	switch that {
	case SeatA:
		return SeatB
	case SeatB:
		return SeatA
	default:
		return SeatNone
	}
}

type UnitType string

const (
	Pawn  UnitType = "P"
	Hero1 UnitType = "H1"
	Hero2 UnitType = "H2"
)

// StartingRank lists unit names in column order of a side's home row.
var StartingRank = [BoardSize]string{"P1", "P2", "H1", "H2", "P3"}

var unitTypes = map[string]UnitType{
	"P1": Pawn,
	"P2": Pawn,
	"P3": Pawn,
	"H1": Hero1,
	"H2": Hero2,
}

var ErrInvalidUnitID = errors.New("invalid unit id")

type Unit struct {
	ID    string   `json:"id"`
	Owner Seat     `json:"owner"`
	Type  UnitType `json:"type"`
}

// UnitID - builds the identity of a unit, e.g. "A-P1".
func UnitID(owner Seat, name string) string {
	return string(owner) + "-" + name
}

// ParseUnitID - decodes a unit identity into its owner and type.
func ParseUnitID(id string) (Unit, error) {
	owner, name, ok := strings.Cut(id, "-")
	if !ok || !Seat(owner).IsValid() {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnitID, id)
	}

	unitType, ok := unitTypes[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnitID, id)
	}

	return Unit{ID: id, Owner: Seat(owner), Type: unitType}, nil
}

// OwnerOf - returns the seat encoded in a unit id, SeatNone if it is malformed.
func OwnerOf(id string) Seat {
	owner, _, ok := strings.Cut(id, "-")
	if !ok || !Seat(owner).IsValid() {
		return SeatNone
	}

	return Seat(owner)
}
