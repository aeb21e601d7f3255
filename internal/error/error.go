package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBound              = errors.New("coordinates out of board bound")
	ErrAlreadyShot             = errors.New("coordinates already shot")
	ErrOverlap                 = errors.New("ship overlaps another ship or its buffer")
	ErrFleetPlacementExhausted = errors.New("fleet placement attempts exhausted")
	ErrInvalidInputFormat      = errors.New("invalid input format")
	ErrInvalidShipLength       = errors.New("invalid ship length")
	ErrMatchOver               = errors.New("match is already over")
	ErrMatchNotExists          = errors.New("match does not exist")
	ErrInvalidStage            = errors.New("invalid stage")
)

func ErrCoordinatesOutOfBound(row, col, size int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d\tsize: %d", ErrOutOfBound, row, col, size)
}

func ErrCoordinatesAlreadyShot(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyShot, row, col)
}

func ErrShipOverlap(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOverlap, row, col)
}

func ErrPlacementExhausted(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrFleetPlacementExhausted, attempts)
}

func ErrInputTokens(count int) error {
	return fmt.Errorf("%w: expected 2 numbers, got %d", ErrInvalidInputFormat, count)
}

func ErrInputNotInt(token string) error {
	return fmt.Errorf("%w: not a number: %q", ErrInvalidInputFormat, token)
}

func ErrShipLength(length int) error {
	return fmt.Errorf("%w: %d", ErrInvalidShipLength, length)
}

func ErrMatchNotFound(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchNotExists, matchUuid)
}

func ErrStage(stage string) error {
	return fmt.Errorf("%w: %s (must be either dev or prod)", ErrInvalidStage, stage)
}

// IsPlacementErr reports whether err is one a placer recovers from by
// trying another position for the same ship.
func IsPlacementErr(err error) bool {
	return errors.Is(err, ErrOutOfBound) || errors.Is(err, ErrOverlap)
}

// IsShotRecoverable reports whether the shooter should simply be asked again.
func IsShotRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfBound) || errors.Is(err, ErrAlreadyShot)
}
