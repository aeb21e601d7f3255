package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type TargetingMode uint8

const (
	TargetingModeRandomSearch TargetingMode = iota
	TargetingModeHuntAroundLastHit
)

func (tm TargetingMode) String() string {
	switch tm {
	case TargetingModeRandomSearch:
		return "RandomSearch"
	case TargetingModeHuntAroundLastHit:
		return "HuntAroundLastHit"
	default:
		return "Unknown"
	}
}

// targeter is one way of choosing the next shot.
type targeter interface {
	candidates(ts *TargetingStrategy) []Coordinates
}

type randomSearch struct{}

func (randomSearch) candidates(ts *TargetingStrategy) []Coordinates {
	untried := make([]Coordinates, 0, ts.boardSize*ts.boardSize)
	for row := 0; row < ts.boardSize; row++ {
		for col := 0; col < ts.boardSize; col++ {
			c := NewCoordinates(row, col)
			if !ts.tried.Has(c) {
				untried = append(untried, c)
			}
		}
	}
	return untried
}

type huntAroundLastHit struct {
	center Coordinates
}

func (h huntAroundLastHit) candidates(ts *TargetingStrategy) []Coordinates {
	out := make([]Coordinates, 0, 8)
	for _, n := range h.center.Neighbours(ts.boardSize) {
		if !ts.tried.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// TargetingStrategy picks shots for the computer. With no open hit it
// searches at random; after a hit it fires around the last hit until
// the ship sinks. It only knows the board size and what it was told
// through Observe.
type TargetingStrategy struct {
	rng       Random
	boardSize int
	lastHit   *Coordinates

	// Hits on the ship currently hunted, oldest first
	openHits []Coordinates
	tried    CoordinatesSet
}

func NewTargetingStrategy(rng Random, boardSize int) *TargetingStrategy {
	return &TargetingStrategy{
		rng:       rng,
		boardSize: boardSize,
		openHits:  make([]Coordinates, 0, 4),
		tried:     NewCoordinatesSet(boardSize * boardSize),
	}
}

func (ts *TargetingStrategy) Mode() TargetingMode {
	if ts.lastHit == nil {
		return TargetingModeRandomSearch
	}
	return TargetingModeHuntAroundLastHit
}

func (ts *TargetingStrategy) LastHit() (Coordinates, bool) {
	if ts.lastHit == nil {
		return Coordinates{}, false
	}
	return *ts.lastHit, true
}

// Ask returns the next coordinates to fire at. The result may still be
// rejected by the board; the caller reports that back through Observe
// and asks again.
func (ts *TargetingStrategy) Ask() Coordinates {
	if ts.lastHit != nil {
		// Walk back through earlier hits on the same ship when the
		// ring around the latest one is used up.
		for i := len(ts.openHits) - 1; i >= 0; i-- {
			options := huntAroundLastHit{center: ts.openHits[i]}.candidates(ts)
			if len(options) > 0 {
				return options[ts.rng.Intn(len(options))]
			}
		}
	}

	options := randomSearch{}.candidates(ts)
	if len(options) == 0 {
		return NewCoordinates(ts.rng.Intn(ts.boardSize), ts.rng.Intn(ts.boardSize))
	}
	return options[ts.rng.Intn(len(options))]
}

// Observe feeds back what happened to a shot at c. A hit starts or
// continues the hunt, a sink ends it. result is ignored when err is set.
func (ts *TargetingStrategy) Observe(c Coordinates, result ShotResult, err error) {
	if err != nil {
		if errors.Is(err, cerr.ErrAlreadyShot) {
			ts.tried.Add(c)
		}
		return
	}

	ts.tried.Add(c)
	switch result.Outcome {
	case ShotOutcomeHit:
		hit := c
		ts.lastHit = &hit
		ts.openHits = append(ts.openHits, c)

	case ShotOutcomeSunk:
		ts.lastHit = nil
		ts.openHits = ts.openHits[:0]
		for _, revealed := range result.RevealedCells {
			ts.tried.Add(revealed)
		}
	}
}

var (
	_ targeter = randomSearch{}
	_ targeter = huntAroundLastHit{}
)
