package console

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	SymbolEmpty  = "O"
	SymbolShip   = "■"
	SymbolHit    = "X"
	SymbolMiss   = "T"
	SymbolBuffer = "."
)

func cellSymbol(state mb.CellState, reveal bool) string {
	switch state {
	case mb.CellStateShip:
		if reveal {
			return SymbolShip
		}
		return SymbolEmpty
	case mb.CellStateHit:
		return SymbolHit
	case mb.CellStateMiss:
		return SymbolMiss
	case mb.CellStateBuffer:
		return SymbolBuffer
	default:
		return SymbolEmpty
	}
}

// Render draws the board as a grid of symbols with 1-based row and
// column headers. Ship cells look like empty water unless reveal is set.
func Render(board *mb.Board, reveal bool) string {
	var sb strings.Builder
	size := board.Size()

	sb.WriteString(" ")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&sb, " | %d", col)
	}
	sb.WriteString(" |")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "\n%d", row+1)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, " | %s", cellSymbol(board.CellAt(mb.NewCoordinates(row, col)), reveal))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
