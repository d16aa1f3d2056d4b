package game

// Size is the board dimension. The win check indexes the diagonals
// directly, so the rules in this package assume 3x3.
const Size = 3

// Mark identifies one of the two players. X always moves first.
// Emptiness is not a Mark; an empty square is an unoccupied Cell.
type Mark int

// Mark constants
const (
	X Mark = iota
	O
)

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// String returns the lowercase glyph for the mark ("x" or "o").
func (m Mark) String() string {
	return [...]string{"x", "o"}[m]
}

// Cell is a single square on the board: empty, or occupied by one Mark.
type Cell struct {
	mark     Mark
	occupied bool
}

// Mark returns the occupying mark and whether the cell is occupied.
func (c Cell) Mark() (Mark, bool) {
	return c.mark, c.occupied
}

// Occupied reports whether the cell holds a mark.
func (c Cell) Occupied() bool {
	return c.occupied
}

// Board is the 3x3 grid of cells, row-major. Board is a value type:
// Game.Board returns a copy, so a Board held by a caller is a snapshot
// that cannot mutate the game.
type Board [Size][Size]Cell

// Full reports whether every cell holds a mark.
func (b Board) Full() bool {
	for _, row := range b {
		for _, cell := range row {
			if !cell.Occupied() {
				return false
			}
		}
	}
	return true
}
