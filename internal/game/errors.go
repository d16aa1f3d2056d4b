package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by Move once the outcome has been decided.
var ErrGameOver = errors.New("game is already over")

// OutOfRangeError reports coordinates outside the 3x3 board.
type OutOfRangeError struct {
	Row, Col int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position (%d,%d) is outside the board", e.Row, e.Col)
}

// OccupiedError reports a move to a cell that already holds a mark. The
// fields carry everything a caller needs to name the square and its
// occupant in a retry prompt.
type OccupiedError struct {
	Occupant Mark
	Row, Col int
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("cell (%d,%d) already holds %s", e.Row, e.Col, e.Occupant)
}
