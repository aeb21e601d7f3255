package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "Horizontal"
	case OrientationVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Classic fleet: one 3-cell, two 2-cell and four 1-cell ships.
var FleetComposition = []int{3, 2, 2, 1, 1, 1, 1}

// Sinking this many ships wins the match
var FleetSize = len(FleetComposition)

type Ship struct {
	bow           Coordinates
	length        int
	orientation   Orientation
	remainingHits int
	cells         []Coordinates
}

func NewShip(bow Coordinates, length int, orientation Orientation) (*Ship, error) {
	if length < 1 {
		return nil, cerr.ErrShipLength(length)
	}

	return &Ship{
		bow:           bow,
		length:        length,
		orientation:   orientation,
		remainingHits: length,
	}, nil
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) RemainingHits() int {
	return sh.remainingHits
}

// Cells returns the coordinates the ship covers, bow first. Horizontal
// ships extend along the columns, vertical ones along the rows. The
// slice is computed once and shared; callers must not modify it.
func (sh *Ship) Cells() []Coordinates {
	if sh.cells != nil {
		return sh.cells
	}

	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		c := sh.bow
		if sh.orientation == OrientationHorizontal {
			c.Col += i
		} else {
			c.Row += i
		}
		cells = append(cells, c)
	}
	sh.cells = cells
	return sh.cells
}

func (sh *Ship) Covers(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) GotHit() {
	if sh.remainingHits > 0 {
		sh.remainingHits--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.remainingHits == 0
}
