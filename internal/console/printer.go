package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

var separator = strings.Repeat("-", 20)

// Printer renders a match on a text terminal.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Greet(boardSize int) {
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "  Welcome to")
	fmt.Fprintln(p.out, "  Battleship")
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, " input format: x y")
	fmt.Fprintf(p.out, " x - row number (1-%d)\n", boardSize)
	fmt.Fprintf(p.out, " y - column number (1-%d)\n", boardSize)
}

func (p *Printer) OnTurnStart(m *mb.Match, active *mb.Side) {
	for _, side := range m.Sides() {
		fmt.Fprintln(p.out, separator)
		fmt.Fprintf(p.out, "%s board:\n", side.Player.Name())
		fmt.Fprintln(p.out, Render(side.Board, side.Board.RevealShips()))
	}
	fmt.Fprintln(p.out, separator)
	fmt.Fprintf(p.out, "%s's turn!\n", active.Player.Name())
}

func (p *Printer) OnShot(_ *mb.Match, shooter *mb.Side, result mb.ShotResult) {
	fmt.Fprintf(p.out, "%s fires at %s\n", shooter.Player.Name(), result.Coordinates)
	switch result.Outcome {
	case mb.ShotOutcomeSunk:
		fmt.Fprintln(p.out, "Sunk!")
	case mb.ShotOutcomeHit:
		fmt.Fprintln(p.out, "Hit!")
	default:
		fmt.Fprintln(p.out, "Miss!")
	}
}

// Rejections are reported to the shooter by the player itself.
func (p *Printer) OnShotRejected(_ *mb.Match, _ *mb.Side, _ mb.Coordinates, _ error) {}

func (p *Printer) OnMatchOver(m *mb.Match, winner *mb.Side) {
	for _, side := range m.Sides() {
		fmt.Fprintln(p.out, separator)
		fmt.Fprintf(p.out, "%s board:\n", side.Player.Name())
		fmt.Fprintln(p.out, Render(side.Board, true))
	}
	fmt.Fprintln(p.out, separator)
	fmt.Fprintf(p.out, "%s won!\n", winner.Player.Name())
}

var _ mb.MatchObserver = (*Printer)(nil)
