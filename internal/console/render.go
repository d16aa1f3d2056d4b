package console

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/tictactoe-cli/internal/game"
)

// Glyphs selects the characters drawn for each cell state.
type Glyphs struct {
	X     string
	O     string
	Empty string
}

// DefaultGlyphs returns the classic lowercase marks with a hollow box
// for empty squares.
func DefaultGlyphs() Glyphs {
	return Glyphs{X: "x", O: "o", Empty: "▢"}
}

// Renderer draws board snapshots as a text grid with column letters
// across the top and row numbers down the left margin.
type Renderer struct {
	glyphs Glyphs
	xStyle termenv.Style
	oStyle termenv.Style
}

// NewRenderer returns a renderer using the given glyphs. When color is
// true and the terminal supports it, marks are tinted; otherwise the
// output is plain text.
func NewRenderer(glyphs Glyphs, color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Renderer{
		glyphs: glyphs,
		xStyle: profile.String(glyphs.X).Foreground(profile.Color("#FF6B6B")),
		oStyle: profile.String(glyphs.O).Foreground(profile.Color("#74B9FF")),
	}
}

// Render produces the grid for a board snapshot:
//
//	   A B C
//	 1 x ▢ ▢
//	 2 ▢ ▢ o
//	 3 ▢ ▢ ▢
//
// Every line ends with a newline.
func (r *Renderer) Render(board game.Board) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < game.Size; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + col))
	}
	sb.WriteByte('\n')

	for row := 0; row < game.Size; row++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('1' + row))
		for col := 0; col < game.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.glyph(board[row][col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (r *Renderer) glyph(cell game.Cell) string {
	mark, ok := cell.Mark()
	if !ok {
		return r.glyphs.Empty
	}
	if mark == game.X {
		return r.xStyle.String()
	}
	return r.oStyle.String()
}
