package console

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tictactoe-cli/internal/game"
	"github.com/lox/tictactoe-cli/internal/gameid"
)

// Session runs one interactive two-player game over a line-oriented
// terminal: render the board, prompt, parse, move, repeat until the
// game reports completion.
type Session struct {
	game     *game.Game
	reader   *LineReader
	out      io.Writer
	renderer *Renderer
	logger   *log.Logger
	clock    quartz.Clock
	id       string
}

// SessionOpts configures a Session. In, Out, Renderer and Logger are
// required; Clock defaults to the real clock.
type SessionOpts struct {
	In       io.Reader
	Out      io.Writer
	Renderer *Renderer
	Logger   *log.Logger
	Clock    quartz.Clock
}

// NewSession creates a session around a fresh game.
func NewSession(opts SessionOpts) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	id := gameid.Generate()
	return &Session{
		game:     game.New(),
		reader:   NewLineReader(opts.In),
		out:      opts.Out,
		renderer: opts.Renderer,
		logger:   opts.Logger.WithPrefix("session").With("gameID", id),
		clock:    clock,
		id:       id,
	}
}

// Run plays the game to completion and announces the result. It returns
// io.EOF when input ends before the game does; the caller decides how to
// exit the process.
func (s *Session) Run() error {
	start := s.clock.Now()
	s.logger.Info("Starting game")

	for !s.game.Finished() {
		fmt.Fprint(s.out, s.renderer.Render(s.game.Board()))
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "Current piece: %s\n", s.game.CurrentMark())

		row, col, err := s.promptMove()
		if err != nil {
			s.logger.Info("Input closed, ending game early", "moves", s.game.Moves())
			return err
		}

		if err := s.game.Move(row, col); err != nil {
			var occ *game.OccupiedError
			if errors.As(err, &occ) {
				fmt.Fprintf(s.out, "The square %s already has %s in it!\n", Square(occ.Row, occ.Col), occ.Occupant)
				s.logger.Debug("Rejected move", "square", Square(occ.Row, occ.Col), "occupant", occ.Occupant)
				continue
			}
			// ParseMove restricts coordinates to the board and the loop
			// condition rules out finished games, so nothing else should
			// reach here.
			return err
		}
		s.logger.Debug("Move played", "square", Square(row, col), "next", s.game.CurrentMark())
	}

	fmt.Fprint(s.out, s.renderer.Render(s.game.Board()))
	fmt.Fprintln(s.out)

	outcome, _ := s.game.Outcome()
	elapsed := s.clock.Since(start)
	fmt.Fprintln(s.out, resultMessage(outcome))
	fmt.Fprintf(s.out, "%d moves in %s\n", s.game.Moves(), elapsed.Round(time.Second))

	s.logger.Info("Game finished", "outcome", outcome, "moves", s.game.Moves(), "duration", elapsed)
	return nil
}

// promptMove reads tokens until one parses, echoing rejected input back
// to the player.
func (s *Session) promptMove() (int, int, error) {
	for {
		fmt.Fprint(s.out, "Enter move (e.g. 1A): ")

		line, err := s.reader.ReadLine()
		if err != nil {
			// Leave the cursor on a fresh line after an unterminated prompt.
			fmt.Fprintln(s.out)
			return 0, 0, err
		}

		row, col, err := ParseMove(line)
		if err != nil {
			var inv *InvalidMoveError
			if errors.As(err, &inv) {
				fmt.Fprintf(s.out, "Invalid move: '%s'. Please try again.\n", inv.Token)
				continue
			}
			return 0, 0, err
		}
		return row, col, nil
	}
}

// resultMessage formats the end-of-game announcement.
func resultMessage(o game.Outcome) string {
	switch o {
	case game.XWins:
		return "x wins!"
	case game.OWins:
		return "o wins!"
	default:
		return "Tie!"
	}
}
