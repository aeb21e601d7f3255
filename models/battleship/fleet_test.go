package battleship

import (
	"io"
	"math/rand"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = log.New(io.Discard)

type countingRandom struct {
	rng   Random
	calls int
	ns    []int
}

func (cr *countingRandom) Intn(n int) int {
	cr.calls++
	cr.ns = append(cr.ns, n)
	return cr.rng.Intn(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestGeneratePlacesWholeFleetApart(t *testing.T) {
	expectedLengths := append([]int(nil), FleetComposition...)
	sort.Sort(sort.Reverse(sort.IntSlice(expectedLengths)))

	for seed := int64(1); seed <= 50; seed++ {
		placer := NewFleetPlacer(rand.New(rand.NewSource(seed)), WithPlacerLogger(quietLogger))
		board, err := placer.Generate()
		require.NoError(t, err, "seed %d", seed)
		require.NotNil(t, board)

		ships := board.Ships()
		require.Len(t, ships, FleetSize)

		lengths := make([]int, 0, len(ships))
		shipCells := 0
		for _, ship := range ships {
			lengths = append(lengths, ship.Length())
			for _, c := range ship.Cells() {
				require.True(t, c.InBound(board.Size()), "seed %d: %v off the board", seed, c)
				require.Equal(t, CellStateShip, board.CellAt(c))
				shipCells++
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
		assert.Equal(t, expectedLengths, lengths)
		assert.Equal(t, 11, shipCells)

		// no two ships touch, not even diagonally
		for i := range ships {
			for j := i + 1; j < len(ships); j++ {
				for _, a := range ships[i].Cells() {
					for _, b := range ships[j].Cells() {
						if abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1 {
							t.Fatalf("seed %d: ships touch at %v and %v", seed, a, b)
						}
					}
				}
			}
		}

		assert.Empty(t, board.FiredAt())
		assert.Equal(t, 0, board.SunkenShips())
		assert.False(t, board.RevealShips())
	}
}

func TestPlaceDrawsInclusiveOrigin(t *testing.T) {
	rng := &countingRandom{rng: rand.New(rand.NewSource(3))}
	placer := NewFleetPlacer(rng, WithPlacerLogger(quietLogger))

	_, _ = placer.Place()
	require.GreaterOrEqual(t, len(rng.ns), 3)
	assert.Equal(t, []int{DefaultBoardSize + 1, DefaultBoardSize + 1, 2}, rng.ns[:3])
}

func TestPlaceExhausted(t *testing.T) {
	// a 3-cell ship never fits on a 2x2 board
	rng := &countingRandom{rng: rand.New(rand.NewSource(1))}
	placer := NewFleetPlacer(rng, WithBoardSize(2), WithPlacerLogger(quietLogger))

	board, err := placer.Place()
	require.ErrorIs(t, err, cerr.ErrFleetPlacementExhausted)
	require.Nil(t, board)
	assert.Equal(t, DefaultMaxPlacementAttempts*3, rng.calls, "every attempt draws row, col and orientation")
}

func TestPlaceAttemptBudgetIsShared(t *testing.T) {
	// ten single-cell ships cannot all fit a 3x3 board with buffers,
	// so the budget must run out across ships
	placer := NewFleetPlacer(
		rand.New(rand.NewSource(9)),
		WithBoardSize(3),
		WithFleet([]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}),
		WithMaxAttempts(50),
		WithPlacerLogger(quietLogger),
	)

	board, err := placer.Place()
	require.ErrorIs(t, err, cerr.ErrFleetPlacementExhausted)
	assert.Nil(t, board)
}

func TestGenerateGivesUp(t *testing.T) {
	placer := NewFleetPlacer(
		rand.New(rand.NewSource(1)),
		WithBoardSize(2),
		WithMaxAttempts(10),
		WithMaxRegenerations(3),
		WithPlacerLogger(quietLogger),
	)

	board, err := placer.Generate()
	require.ErrorIs(t, err, cerr.ErrFleetPlacementExhausted)
	assert.Nil(t, board)
}

func TestGenerateCustomFleet(t *testing.T) {
	placer := NewFleetPlacer(
		rand.New(rand.NewSource(5)),
		WithBoardSize(8),
		WithFleet([]int{4, 1}),
		WithPlacerLogger(quietLogger),
	)

	board, err := placer.Generate()
	require.NoError(t, err)
	require.Len(t, board.Ships(), 2)
	assert.Equal(t, 8, board.Size())
	assert.Equal(t, 4, board.Ships()[0].Length())
	assert.GreaterOrEqual(t, placer.LastAttempts(), 2)
}
