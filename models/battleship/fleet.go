package battleship

import (
	"errors"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	// Shared by all ships of one board, not per ship
	DefaultMaxPlacementAttempts = 2000

	defaultMaxBoardRegenerations = 1000
)

// Random is the subset of *rand.Rand the engine draws from. Tests
// inject a seeded source.
type Random interface {
	Intn(n int) int
}

type FleetPlacer struct {
	rng                Random
	logger             *log.Logger
	boardSize          int
	fleet              []int
	maxAttempts        int
	maxRegenerations   int
	lastAttemptsNeeded int
}

type FleetPlacerOption func(*FleetPlacer)

func NewFleetPlacer(rng Random, opts ...FleetPlacerOption) *FleetPlacer {
	fp := &FleetPlacer{
		rng:              rng,
		logger:           log.Default(),
		boardSize:        DefaultBoardSize,
		fleet:            FleetComposition,
		maxAttempts:      DefaultMaxPlacementAttempts,
		maxRegenerations: defaultMaxBoardRegenerations,
	}

	for _, opt := range opts {
		opt(fp)
	}
	return fp
}

func WithBoardSize(size int) FleetPlacerOption {
	return func(fp *FleetPlacer) {
		fp.boardSize = size
	}
}

func WithMaxAttempts(attempts int) FleetPlacerOption {
	return func(fp *FleetPlacer) {
		fp.maxAttempts = attempts
	}
}

func WithMaxRegenerations(regenerations int) FleetPlacerOption {
	return func(fp *FleetPlacer) {
		fp.maxRegenerations = regenerations
	}
}

// WithFleet replaces the ship lengths to place. Only meant for tests;
// real matches always use FleetComposition.
func WithFleet(lengths []int) FleetPlacerOption {
	return func(fp *FleetPlacer) {
		fp.fleet = lengths
	}
}

func WithPlacerLogger(logger *log.Logger) FleetPlacerOption {
	return func(fp *FleetPlacer) {
		fp.logger = logger
	}
}

// Attempts used by the last successful Place call.
func (fp *FleetPlacer) LastAttempts() int {
	return fp.lastAttemptsNeeded
}

// Place tries to put the whole fleet on a fresh board. The bow row and
// column are drawn from [0, size] inclusive, so some candidates fall
// off the board and are rejected like overlaps. When the attempt
// budget runs out no board is returned at all.
func (fp *FleetPlacer) Place() (*Board, error) {
	board := NewBoard(fp.boardSize, false)
	attempts := 0

	for _, length := range fp.fleet {
		for {
			attempts++
			if attempts > fp.maxAttempts {
				return nil, cerr.ErrPlacementExhausted(fp.maxAttempts)
			}

			bow := NewCoordinates(fp.rng.Intn(fp.boardSize+1), fp.rng.Intn(fp.boardSize+1))
			orientation := Orientation(fp.rng.Intn(2))

			ship, err := NewShip(bow, length, orientation)
			if err != nil {
				return nil, err
			}

			err = board.PlaceShip(ship)
			if err == nil {
				break
			}
			if !cerr.IsPlacementErr(err) {
				return nil, err
			}
		}
	}

	fp.lastAttemptsNeeded = attempts
	return board, nil
}

// Generate calls Place with a fresh empty board until one succeeds.
func (fp *FleetPlacer) Generate() (*Board, error) {
	var lastErr error

	for i := 0; i < max(1, fp.maxRegenerations); i++ {
		board, err := fp.Place()
		if err == nil {
			fp.logger.Debug("fleet placed", "regenerations", i, "attempts", fp.lastAttemptsNeeded)
			return board, nil
		}
		if !errors.Is(err, cerr.ErrFleetPlacementExhausted) {
			return nil, err
		}

		lastErr = err
		fp.logger.Debug("fleet placement exhausted; regenerating board", "regeneration", i+1)
	}

	return nil, lastErr
}
