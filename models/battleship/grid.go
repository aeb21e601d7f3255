package battleship

import (
	"fmt"
	"sort"

	"github.com/dolthub/swiss"
)

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss

	// Neighbour of a sunk ship, revealed as not worth shooting
	CellStateBuffer
)

func (cs CellState) String() string {
	switch cs {
	case CellStateEmpty:
		return "Empty"
	case CellStateShip:
		return "Ship"
	case CellStateHit:
		return "Hit"
	case CellStateMiss:
		return "Miss"
	case CellStateBuffer:
		return "Buffer"
	default:
		return "Unknown"
	}
}

// Zero-based position on the grid.
type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// String renders the 1-based form the player types in.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row+1, c.Col+1)
}

// Neighbours returns the ring of up to 8 cells around c that lie
// inside a size x size grid. c itself is not included.
func (c Coordinates) Neighbours(size int) []Coordinates {
	neighbours := make([]Coordinates, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := NewCoordinates(c.Row+dr, c.Col+dc)
			if n.InBound(size) {
				neighbours = append(neighbours, n)
			}
		}
	}
	return neighbours
}

func (c Coordinates) InBound(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

type Grid [][]CellState

// Creates a new default grid
// All indexes are zero/CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

func (g Grid) At(c Coordinates) CellState {
	return g[c.Row][c.Col]
}

func (g Grid) Set(c Coordinates, state CellState) {
	g[c.Row][c.Col] = state
}

type CoordinatesSet struct {
	m *swiss.Map[Coordinates, struct{}]
}

func NewCoordinatesSet(capacity int) CoordinatesSet {
	return CoordinatesSet{m: swiss.NewMap[Coordinates, struct{}](uint32(capacity))}
}

func (s CoordinatesSet) Add(c Coordinates) {
	s.m.Put(c, struct{}{})
}

func (s CoordinatesSet) Has(c Coordinates) bool {
	return s.m.Has(c)
}

func (s CoordinatesSet) Len() int {
	return s.m.Count()
}

// Slice returns the members ordered by row then column.
func (s CoordinatesSet) Slice() []Coordinates {
	out := make([]Coordinates, 0, s.m.Count())
	s.m.Iter(func(c Coordinates, _ struct{}) bool {
		out = append(out, c)
		return false
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
