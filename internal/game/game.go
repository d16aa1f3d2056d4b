package game

// Outcome is the terminal result of a finished game.
type Outcome int

// Outcome constants
const (
	XWins Outcome = iota
	OWins
	Tie
)

// String returns a lowercase name suitable for logs.
func (o Outcome) String() string {
	return [...]string{"x wins", "o wins", "tie"}[o]
}

// Game holds the state of one tic-tac-toe game: the board, the mark to
// move next, and the outcome once decided. The outcome is set at most
// once; after that every Move fails with ErrGameOver and nothing changes.
// Construct with New; the zero value has X to move but is otherwise
// equivalent.
type Game struct {
	board    Board
	current  Mark
	outcome  Outcome
	finished bool
}

// New returns a game with an empty board and X to move.
func New() *Game {
	return &Game{current: X}
}

// Move places the current mark at (row, col), passes the turn to the
// other mark, and re-evaluates the outcome. It returns ErrGameOver after
// the game has finished, *OutOfRangeError for coordinates outside [0,3),
// and *OccupiedError when the target cell is taken. A failed move leaves
// the game unchanged.
//
// The turn passes even on the winning move, so CurrentMark reports the
// mark that would have moved next.
func (g *Game) Move(row, col int) error {
	if g.finished {
		return ErrGameOver
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return &OutOfRangeError{Row: row, Col: col}
	}
	if occupant, ok := g.board[row][col].Mark(); ok {
		return &OccupiedError{Occupant: occupant, Row: row, Col: col}
	}

	g.board[row][col] = Cell{mark: g.current, occupied: true}
	g.current = g.current.Other()
	g.updateOutcome(row, col)
	return nil
}

// updateOutcome inspects only the lines through the just-placed cell.
// With one move at a time that is sufficient; a game constructed from an
// arbitrary position would need a full-board scan instead.
func (g *Game) updateOutcome(row, col int) {
	if g.finished {
		return
	}

	lines := [][Size]Cell{
		g.board[row],
		{g.board[0][col], g.board[1][col], g.board[2][col]},
	}
	if row == col {
		lines = append(lines, [Size]Cell{g.board[0][0], g.board[1][1], g.board[2][2]})
	}
	if row+col == Size-1 {
		lines = append(lines, [Size]Cell{g.board[0][2], g.board[1][1], g.board[2][0]})
	}

	for _, line := range lines {
		if winner, ok := winningMark(line); ok {
			g.setOutcome(winner.outcome())
			return
		}
	}

	if g.board.Full() {
		g.setOutcome(Tie)
	}
}

// winningMark returns the mark filling the line, if any.
func winningMark(line [Size]Cell) (Mark, bool) {
	first, ok := line[0].Mark()
	if !ok {
		return 0, false
	}
	for _, cell := range line[1:] {
		m, ok := cell.Mark()
		if !ok || m != first {
			return 0, false
		}
	}
	return first, true
}

// outcome maps a winning mark to its outcome.
func (m Mark) outcome() Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

func (g *Game) setOutcome(o Outcome) {
	g.outcome = o
	g.finished = true
}

// Finished reports whether the outcome has been decided.
func (g *Game) Finished() bool {
	return g.finished
}

// Outcome returns the result and whether the game has finished.
func (g *Game) Outcome() (Outcome, bool) {
	return g.outcome, g.finished
}

// CurrentMark returns the mark that moves next.
func (g *Game) CurrentMark() Mark {
	return g.current
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// Moves returns the number of marks on the board.
func (g *Game) Moves() int {
	n := 0
	for _, row := range g.board {
		for _, cell := range row {
			if cell.Occupied() {
				n++
			}
		}
	}
	return n
}
