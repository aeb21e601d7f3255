package battleship

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type MatchStatus uint8

const (
	MatchStatusOngoing MatchStatus = iota
	MatchStatusFirstSideWon
	MatchStatusSecondSideWon
)

func (ms MatchStatus) String() string {
	switch ms {
	case MatchStatusOngoing:
		return "Ongoing"
	case MatchStatusFirstSideWon:
		return "FirstSideWon"
	case MatchStatusSecondSideWon:
		return "SecondSideWon"
	default:
		return "Unknown"
	}
}

func (ms MatchStatus) IsOver() bool {
	return ms != MatchStatusOngoing
}

// Side pairs a player with the board it owns. The board it fires upon
// is the other side's.
type Side struct {
	Player Player
	Board  *Board
}

func NewSide(player Player, board *Board) *Side {
	return &Side{Player: player, Board: board}
}

// MatchObserver is told about everything that happens in a match.
// Rendering lives behind it; the match itself never prints.
type MatchObserver interface {
	OnTurnStart(m *Match, active *Side)
	OnShot(m *Match, shooter *Side, result ShotResult)
	OnShotRejected(m *Match, shooter *Side, c Coordinates, err error)
	OnMatchOver(m *Match, winner *Side)
}

type TurnReport struct {
	Shooter *Side
	Result  ShotResult

	// Shots rejected before this one resolved
	Rejected int
}

type Match struct {
	uuid     string
	sides    [2]*Side
	turn     int
	shots    int
	status   MatchStatus
	observer MatchObserver
	logger   *log.Logger
}

type MatchOption func(*Match)

func WithObserver(observer MatchObserver) MatchOption {
	return func(m *Match) {
		m.observer = observer
	}
}

func WithMatchLogger(logger *log.Logger) MatchOption {
	return func(m *Match) {
		m.logger = logger
	}
}

func NewMatch(first, second *Side, opts ...MatchOption) *Match {
	m := &Match{
		uuid:   uuid.NewString()[:6],
		sides:  [2]*Side{first, second},
		status: MatchStatusOngoing,
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) Status() MatchStatus {
	return m.status
}

// Turn counts handovers between sides; extra turns do not advance it.
func (m *Match) Turn() int {
	return m.turn
}

// Shots counts resolved shots from both sides.
func (m *Match) Shots() int {
	return m.shots
}

// returns the sides in the order of first then second.
func (m *Match) Sides() []*Side {
	return []*Side{m.sides[0], m.sides[1]}
}

func (m *Match) ActiveSide() *Side {
	return m.sides[m.turn%2]
}

func (m *Match) OpposingSide() *Side {
	return m.sides[(m.turn+1)%2]
}

func (m *Match) Winner() *Side {
	switch m.status {
	case MatchStatusFirstSideWon:
		return m.sides[0]
	case MatchStatusSecondSideWon:
		return m.sides[1]
	default:
		return nil
	}
}

// PlayTurn resolves exactly one shot of the active side. Out-of-bound
// and repeated shots are reported to the shooter and asked again
// without giving the turn away.
func (m *Match) PlayTurn() (TurnReport, error) {
	if m.status.IsOver() {
		return TurnReport{}, cerr.ErrMatchOver
	}

	shooter, defender := m.ActiveSide(), m.OpposingSide()
	if m.observer != nil {
		m.observer.OnTurnStart(m, shooter)
	}

	report := TurnReport{Shooter: shooter}

askLoop:
	for {
		target, err := shooter.Player.Ask()
		if err != nil {
			return report, err
		}

		result, err := defender.Board.Shoot(target)
		if err != nil {
			if !cerr.IsShotRecoverable(err) {
				return report, err
			}

			report.Rejected++
			m.logger.Debug("shot rejected", "match", m.uuid, "player", shooter.Player.Name(), "target", target, "err", err)
			shooter.Player.Observe(target, ShotResult{}, err)
			if m.observer != nil {
				m.observer.OnShotRejected(m, shooter, target, err)
			}
			continue askLoop
		}

		report.Result = result
		break askLoop
	}

	m.shots++
	result := report.Result
	shooter.Player.Observe(result.Coordinates, result, nil)
	m.logger.Debug("shot resolved", "match", m.uuid, "player", shooter.Player.Name(), "target", result.Coordinates, "outcome", result.Outcome)

	if m.observer != nil {
		m.observer.OnShot(m, shooter, result)
	}

	if defender.Board.SunkenShips() == FleetSize {
		if shooter == m.sides[0] {
			m.status = MatchStatusFirstSideWon
		} else {
			m.status = MatchStatusSecondSideWon
		}

		m.logger.Info("match over", "match", m.uuid, "winner", shooter.Player.Name(), "shots", m.shots)
		if m.observer != nil {
			m.observer.OnMatchOver(m, shooter)
		}
		return report, nil
	}

	if !result.Outcome.GrantsExtraTurn() {
		m.turn++
	}
	return report, nil
}

// Play runs turns until one fleet is destroyed.
func (m *Match) Play() (MatchStatus, error) {
	for !m.status.IsOver() {
		if _, err := m.PlayTurn(); err != nil {
			return m.status, err
		}
	}
	return m.status, nil
}
