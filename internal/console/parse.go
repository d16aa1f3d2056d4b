package console

import "fmt"

// InvalidMoveError reports a token that does not name a board square.
// Token carries the original input so callers can echo it back.
type InvalidMoveError struct {
	Token string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q", e.Token)
}

// ParseMove maps a two-character token like "1A" or "3c" to zero-based
// board coordinates. The first character selects the row (1-3), the
// second the column (A-C, case-insensitive). Anything else fails with
// *InvalidMoveError.
func ParseMove(token string) (row, col int, err error) {
	if len(token) != 2 {
		return 0, 0, &InvalidMoveError{Token: token}
	}

	switch token[0] {
	case '1':
		row = 0
	case '2':
		row = 1
	case '3':
		row = 2
	default:
		return 0, 0, &InvalidMoveError{Token: token}
	}

	switch token[1] {
	case 'A', 'a':
		col = 0
	case 'B', 'b':
		col = 1
	case 'C', 'c':
		col = 2
	default:
		return 0, 0, &InvalidMoveError{Token: token}
	}

	return row, col, nil
}

// Square formats zero-based coordinates as the token a player would
// type, e.g. (0,0) -> "1A". The inverse of ParseMove.
func Square(row, col int) string {
	return fmt.Sprintf("%d%c", row+1, 'A'+col)
}
