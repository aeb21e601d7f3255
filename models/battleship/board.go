package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const DefaultBoardSize = 6

type ShotOutcome uint8

const (
	ShotOutcomeMiss ShotOutcome = iota
	ShotOutcomeHit
	ShotOutcomeSunk
)

func (so ShotOutcome) String() string {
	switch so {
	case ShotOutcomeMiss:
		return "Miss"
	case ShotOutcomeHit:
		return "Hit"
	case ShotOutcomeSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// Hits and sinks let the shooter fire again.
func (so ShotOutcome) GrantsExtraTurn() bool {
	return so == ShotOutcomeHit || so == ShotOutcomeSunk
}

type ShotResult struct {
	Coordinates Coordinates
	Outcome     ShotOutcome

	// Set only when Outcome is ShotOutcomeSunk
	SunkShip      *Ship
	RevealedCells []Coordinates
}

type Board struct {
	size        int
	revealShips bool
	grid        Grid
	ships       []*Ship
	sunkenShips int

	// Ship cells plus the one-cell ring around every ship. Only
	// consulted when placing ships.
	exclusionZone CoordinatesSet

	// Every cell fired upon, plus the rings revealed around sunk ships.
	firedAt CoordinatesSet
}

func NewBoard(size int, revealShips bool) *Board {
	return &Board{
		size:          size,
		revealShips:   revealShips,
		grid:          NewGrid(size),
		ships:         make([]*Ship, 0, FleetSize),
		exclusionZone: NewCoordinatesSet(size * size),
		firedAt:       NewCoordinatesSet(size * size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) RevealShips() bool {
	return b.revealShips
}

func (b *Board) SetRevealShips(reveal bool) {
	b.revealShips = reveal
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) SunkenShips() int {
	return b.sunkenShips
}

func (b *Board) IsDefeated() bool {
	return b.sunkenShips == FleetSize
}

func (b *Board) CellAt(c Coordinates) CellState {
	return b.grid.At(c)
}

func (b *Board) IsFiredAt(c Coordinates) bool {
	return b.firedAt.Has(c)
}

func (b *Board) IsExcluded(c Coordinates) bool {
	return b.exclusionZone.Has(c)
}

// Occupied is the union of the placement exclusion zone and the
// fired-at registry.
func (b *Board) Occupied(c Coordinates) bool {
	return b.exclusionZone.Has(c) || b.firedAt.Has(c)
}

func (b *Board) FiredAt() []Coordinates {
	return b.firedAt.Slice()
}

func (b *Board) ShipAt(c Coordinates) *Ship {
	for _, ship := range b.ships {
		if ship.Covers(c) {
			return ship
		}
	}
	return nil
}

func (b *Board) out(c Coordinates) bool {
	return !c.InBound(b.size)
}

// PlaceShip validates every cell of the ship before touching any
// state, so a failed placement leaves the board as it was.
func (b *Board) PlaceShip(ship *Ship) error {
	for _, c := range ship.Cells() {
		if b.out(c) {
			return cerr.ErrCoordinatesOutOfBound(c.Row, c.Col, b.size)
		}
		if b.exclusionZone.Has(c) {
			return cerr.ErrShipOverlap(c.Row, c.Col)
		}
	}

	for _, c := range ship.Cells() {
		b.grid.Set(c, CellStateShip)
		b.exclusionZone.Add(c)
	}
	b.ships = append(b.ships, ship)

	for _, c := range b.ring(ship) {
		b.exclusionZone.Add(c)
	}
	return nil
}

// ring returns the in-bound neighbours of the ship that are not ship
// cells themselves. No duplicates.
func (b *Board) ring(ship *Ship) []Coordinates {
	seen := NewCoordinatesSet(len(ship.Cells()) * 8)
	ring := make([]Coordinates, 0, len(ship.Cells())*3+6)

	for _, c := range ship.Cells() {
		for _, n := range c.Neighbours(b.size) {
			if ship.Covers(n) || seen.Has(n) {
				continue
			}
			seen.Add(n)
			ring = append(ring, n)
		}
	}
	return ring
}

func (b *Board) Shoot(c Coordinates) (ShotResult, error) {
	if b.out(c) {
		return ShotResult{}, cerr.ErrCoordinatesOutOfBound(c.Row, c.Col, b.size)
	}
	if b.firedAt.Has(c) {
		return ShotResult{}, cerr.ErrCoordinatesAlreadyShot(c.Row, c.Col)
	}

	b.firedAt.Add(c)
	result := ShotResult{Coordinates: c}

	ship := b.ShipAt(c)
	if ship == nil {
		b.grid.Set(c, CellStateMiss)
		result.Outcome = ShotOutcomeMiss
		return result, nil
	}

	ship.GotHit()
	b.grid.Set(c, CellStateHit)

	if !ship.IsSunk() {
		result.Outcome = ShotOutcomeHit
		return result, nil
	}

	b.sunkenShips++
	result.Outcome = ShotOutcomeSunk
	result.SunkShip = ship
	result.RevealedCells = b.revealRing(ship)
	return result, nil
}

// revealRing marks the unfired ring of a sunk ship as buffer and makes
// those cells shot-ineligible.
func (b *Board) revealRing(ship *Ship) []Coordinates {
	revealed := make([]Coordinates, 0, 8)
	for _, c := range b.ring(ship) {
		if b.firedAt.Has(c) {
			continue
		}
		b.grid.Set(c, CellStateBuffer)
		b.firedAt.Add(c)
		revealed = append(revealed, c)
	}
	return revealed
}
