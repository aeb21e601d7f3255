package battleship

import (
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShip(t *testing.T, row, col, length int, orientation Orientation) *Ship {
	t.Helper()
	ship, err := NewShip(NewCoordinates(row, col), length, orientation)
	require.NoError(t, err)
	return ship
}

func TestShipCells(t *testing.T) {
	tests := []struct {
		name     string
		ship     *Ship
		expected []Coordinates
	}{
		{
			name:     "horizontal extends along columns",
			ship:     mustShip(t, 0, 0, 3, OrientationHorizontal),
			expected: []Coordinates{{0, 0}, {0, 1}, {0, 2}},
		},
		{
			name:     "vertical extends along rows",
			ship:     mustShip(t, 2, 1, 2, OrientationVertical),
			expected: []Coordinates{{2, 1}, {3, 1}},
		},
		{
			name:     "single cell",
			ship:     mustShip(t, 5, 5, 1, OrientationVertical),
			expected: []Coordinates{{5, 5}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.ship.Cells())
			assert.Equal(t, len(test.expected), test.ship.RemainingHits())
			assert.False(t, test.ship.IsSunk())
		})
	}
}

func TestNewShipInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		ship, err := NewShip(NewCoordinates(0, 0), length, OrientationHorizontal)
		require.ErrorIs(t, err, cerr.ErrInvalidShipLength)
		require.Nil(t, ship)
	}
}

func TestPlaceShipMarksCellsAndBuffer(t *testing.T) {
	board := NewBoard(DefaultBoardSize, true)
	ship := mustShip(t, 0, 0, 3, OrientationHorizontal)
	require.NoError(t, board.PlaceShip(ship))

	for _, c := range ship.Cells() {
		assert.Equal(t, CellStateShip, board.CellAt(c))
		assert.True(t, board.IsExcluded(c))
		assert.True(t, board.Occupied(c))
	}

	for _, c := range []Coordinates{{0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}} {
		assert.True(t, board.IsExcluded(c), "buffer cell %v must be excluded", c)
		assert.Equal(t, CellStateEmpty, board.CellAt(c), "buffer is not drawn at placement")
		assert.False(t, board.IsFiredAt(c))
	}

	assert.False(t, board.IsExcluded(NewCoordinates(2, 0)))
	assert.False(t, board.IsExcluded(NewCoordinates(0, 4)))
	assert.Len(t, board.Ships(), 1)
}

func TestPlaceShipRejections(t *testing.T) {
	tests := []struct {
		name        string
		ship        *Ship
		expectedErr error
	}{
		{
			name:        "runs off the right edge",
			ship:        mustShip(t, 0, 4, 3, OrientationHorizontal),
			expectedErr: cerr.ErrOutOfBound,
		},
		{
			name:        "runs off the bottom edge",
			ship:        mustShip(t, 5, 0, 2, OrientationVertical),
			expectedErr: cerr.ErrOutOfBound,
		},
		{
			name:        "bow on the off-by-one row",
			ship:        mustShip(t, 6, 0, 1, OrientationVertical),
			expectedErr: cerr.ErrOutOfBound,
		},
		{
			name:        "same cell as existing ship",
			ship:        mustShip(t, 2, 2, 1, OrientationVertical),
			expectedErr: cerr.ErrOverlap,
		},
		{
			name:        "touches existing ship diagonally",
			ship:        mustShip(t, 3, 3, 1, OrientationVertical),
			expectedErr: cerr.ErrOverlap,
		},
		{
			name:        "crosses the buffer",
			ship:        mustShip(t, 1, 0, 3, OrientationHorizontal),
			expectedErr: cerr.ErrOverlap,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := NewBoard(DefaultBoardSize, true)
			require.NoError(t, board.PlaceShip(mustShip(t, 2, 2, 1, OrientationVertical)))

			err := board.PlaceShip(test.ship)
			require.ErrorIs(t, err, test.expectedErr)
			require.True(t, cerr.IsPlacementErr(err))

			// nothing of the rejected ship is left behind
			assert.Len(t, board.Ships(), 1)
			for _, c := range test.ship.Cells() {
				if c.InBound(board.Size()) && !board.IsExcluded(c) {
					assert.Equal(t, CellStateEmpty, board.CellAt(c))
				}
			}
		})
	}

	t.Run("partially out of bound leaves in-bound cells free", func(t *testing.T) {
		board := NewBoard(DefaultBoardSize, true)
		require.ErrorIs(t, board.PlaceShip(mustShip(t, 0, 4, 3, OrientationHorizontal)), cerr.ErrOutOfBound)
		assert.False(t, board.IsExcluded(NewCoordinates(0, 4)))
		assert.False(t, board.IsExcluded(NewCoordinates(0, 5)))
	})

	t.Run("two cells apart is allowed", func(t *testing.T) {
		board := NewBoard(DefaultBoardSize, true)
		require.NoError(t, board.PlaceShip(mustShip(t, 2, 2, 1, OrientationVertical)))
		require.NoError(t, board.PlaceShip(mustShip(t, 4, 4, 1, OrientationVertical)))
	})
}

func TestShootScenario(t *testing.T) {
	board := NewBoard(DefaultBoardSize, false)
	ship := mustShip(t, 0, 0, 3, OrientationHorizontal)
	require.NoError(t, board.PlaceShip(ship))
	require.Equal(t, []Coordinates{{0, 0}, {0, 1}, {0, 2}}, ship.Cells())

	res, err := board.Shoot(NewCoordinates(0, 0))
	require.NoError(t, err)
	assert.Equal(t, ShotOutcomeHit, res.Outcome)
	assert.Equal(t, 2, ship.RemainingHits())

	res, err = board.Shoot(NewCoordinates(0, 1))
	require.NoError(t, err)
	assert.Equal(t, ShotOutcomeHit, res.Outcome)
	assert.Equal(t, 1, ship.RemainingHits())
	assert.Equal(t, 0, board.SunkenShips())
	assert.Nil(t, res.SunkShip)

	res, err = board.Shoot(NewCoordinates(0, 2))
	require.NoError(t, err)
	assert.Equal(t, ShotOutcomeSunk, res.Outcome)
	assert.Equal(t, 0, ship.RemainingHits())
	assert.True(t, ship.IsSunk())
	assert.Equal(t, 1, board.SunkenShips())
	assert.Same(t, ship, res.SunkShip)

	for _, c := range ship.Cells() {
		assert.Equal(t, CellStateHit, board.CellAt(c))
	}

	ring := []Coordinates{{0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}
	assert.ElementsMatch(t, ring, res.RevealedCells)
	for _, c := range ring {
		assert.Equal(t, CellStateBuffer, board.CellAt(c))
		assert.True(t, board.IsFiredAt(c))

		_, err := board.Shoot(c)
		assert.ErrorIs(t, err, cerr.ErrAlreadyShot, "revealed buffer %v must not be shootable", c)
	}
}

func TestShootOutOfBound(t *testing.T) {
	board := NewBoard(DefaultBoardSize, false)
	require.NoError(t, board.PlaceShip(mustShip(t, 0, 0, 1, OrientationHorizontal)))

	for _, c := range []Coordinates{{10, 10}, {-1, 0}, {0, -1}, {6, 0}, {0, 6}} {
		res, err := board.Shoot(c)
		require.ErrorIs(t, err, cerr.ErrOutOfBound, "coordinates %v", c)
		assert.Equal(t, ShotResult{}, res)
	}

	assert.Empty(t, board.FiredAt())
	assert.Equal(t, 0, board.SunkenShips())
}

func TestShootTwice(t *testing.T) {
	board := NewBoard(DefaultBoardSize, false)
	require.NoError(t, board.PlaceShip(mustShip(t, 3, 3, 2, OrientationVertical)))

	for _, c := range []Coordinates{{0, 0}, {3, 3}} {
		_, err := board.Shoot(c)
		require.NoError(t, err)

		_, err = board.Shoot(c)
		require.ErrorIs(t, err, cerr.ErrAlreadyShot)
	}

	ship := board.Ships()[0]
	assert.Equal(t, 1, ship.RemainingHits(), "rejected shot must not count as a hit")
}

func TestShootMiss(t *testing.T) {
	board := NewBoard(DefaultBoardSize, false)
	require.NoError(t, board.PlaceShip(mustShip(t, 0, 0, 1, OrientationHorizontal)))

	res, err := board.Shoot(NewCoordinates(4, 4))
	require.NoError(t, err)
	assert.Equal(t, ShotOutcomeMiss, res.Outcome)
	assert.False(t, res.Outcome.GrantsExtraTurn())
	assert.Equal(t, CellStateMiss, board.CellAt(NewCoordinates(4, 4)))
	assert.Equal(t, []Coordinates{{4, 4}}, board.FiredAt())
}

func TestSunkReportedOnce(t *testing.T) {
	for length := 1; length <= 3; length++ {
		board := NewBoard(DefaultBoardSize, false)
		ship := mustShip(t, 2, 1, length, OrientationHorizontal)
		require.NoError(t, board.PlaceShip(ship))

		sunkReports := 0
		for i, c := range ship.Cells() {
			res, err := board.Shoot(c)
			require.NoError(t, err)
			require.True(t, res.Outcome.GrantsExtraTurn())
			assert.Equal(t, length-i-1, ship.RemainingHits())

			if res.Outcome == ShotOutcomeSunk {
				sunkReports++
				assert.Equal(t, length-1, i, "sunk must come on the last hit")
			}
		}
		assert.Equal(t, 1, sunkReports)
		assert.Equal(t, 1, board.SunkenShips())
	}
}

func TestRevealSkipsFiredCells(t *testing.T) {
	board := NewBoard(DefaultBoardSize, false)
	require.NoError(t, board.PlaceShip(mustShip(t, 2, 2, 1, OrientationHorizontal)))

	_, err := board.Shoot(NewCoordinates(1, 1))
	require.NoError(t, err)

	res, err := board.Shoot(NewCoordinates(2, 2))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeSunk, res.Outcome)

	assert.Len(t, res.RevealedCells, 7)
	assert.NotContains(t, res.RevealedCells, NewCoordinates(1, 1))
	assert.Equal(t, CellStateMiss, board.CellAt(NewCoordinates(1, 1)))
}

func TestNeighboursClipped(t *testing.T) {
	assert.ElementsMatch(t,
		[]Coordinates{{0, 1}, {1, 0}, {1, 1}},
		NewCoordinates(0, 0).Neighbours(DefaultBoardSize),
	)
	assert.Len(t, NewCoordinates(3, 3).Neighbours(DefaultBoardSize), 8)
	assert.Len(t, NewCoordinates(5, 2).Neighbours(DefaultBoardSize), 5)
}

func TestCoordinatesSetSliceOrdered(t *testing.T) {
	set := NewCoordinatesSet(4)
	for _, c := range []Coordinates{{2, 1}, {0, 3}, {2, 0}, {0, 3}} {
		set.Add(c)
	}

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []Coordinates{{0, 3}, {2, 0}, {2, 1}}, set.Slice())
}
