package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const promptMove = "Your move: "

// ParseCoordinates reads two whitespace separated 1-based numbers,
// row first. Range is not checked here; the board does that.
func ParseCoordinates(line string) (mb.Coordinates, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return mb.Coordinates{}, cerr.ErrInputTokens(len(tokens))
	}

	row, err := strconv.Atoi(tokens[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputNotInt(tokens[0])
	}
	col, err := strconv.Atoi(tokens[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputNotInt(tokens[1])
	}

	return mb.NewCoordinates(row-1, col-1), nil
}

type HumanPlayer struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (hp *HumanPlayer) Name() string {
	return hp.name
}

// Ask blocks until a well-formed line arrives. Malformed lines are
// answered with a message and another prompt. io.EOF is returned when
// the input is closed.
func (hp *HumanPlayer) Ask() (mb.Coordinates, error) {
	for {
		fmt.Fprint(hp.out, promptMove)

		if !hp.scanner.Scan() {
			if err := hp.scanner.Err(); err != nil {
				return mb.Coordinates{}, err
			}
			return mb.Coordinates{}, io.EOF
		}

		c, err := ParseCoordinates(hp.scanner.Text())
		if err != nil {
			fmt.Fprintf(hp.out, "Error: %s\n", describeErr(err))
			continue
		}
		return c, nil
	}
}

func (hp *HumanPlayer) Observe(c mb.Coordinates, _ mb.ShotResult, err error) {
	if err != nil {
		fmt.Fprintf(hp.out, "%s %s\n", c, describeErr(err))
	}
}

func describeErr(err error) string {
	switch {
	case errors.Is(err, cerr.ErrOutOfBound):
		return "is off the board!"
	case errors.Is(err, cerr.ErrAlreadyShot):
		return "has already been shot at"
	case errors.Is(err, cerr.ErrInvalidInputFormat):
		return "enter two numbers: row and column"
	default:
		return err.Error()
	}
}

var _ mb.Player = (*HumanPlayer)(nil)
