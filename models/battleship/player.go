package battleship

import (
	"time"
)

// Player is one side of a match: it proposes shots and hears back how
// they went. Ask may block (the human side waits for input); an error
// from Ask ends the match run.
type Player interface {
	Name() string
	Ask() (Coordinates, error)
	Observe(c Coordinates, result ShotResult, err error)
}

type ComputerPlayer struct {
	strategy *TargetingStrategy
	delay    time.Duration
	sleep    func(time.Duration)
}

func NewComputerPlayer(strategy *TargetingStrategy, delay time.Duration) *ComputerPlayer {
	return &ComputerPlayer{
		strategy: strategy,
		delay:    delay,
		sleep:    time.Sleep,
	}
}

func (cp *ComputerPlayer) Name() string {
	return "Computer"
}

func (cp *ComputerPlayer) Strategy() *TargetingStrategy {
	return cp.strategy
}

// Ask pauses for the configured delay so a person can follow the
// computer's moves, then defers to the targeting strategy.
func (cp *ComputerPlayer) Ask() (Coordinates, error) {
	if cp.delay > 0 {
		cp.sleep(cp.delay)
	}
	return cp.strategy.Ask(), nil
}

func (cp *ComputerPlayer) Observe(c Coordinates, result ShotResult, err error) {
	cp.strategy.Observe(c, result, err)
}

var _ Player = (*ComputerPlayer)(nil)
