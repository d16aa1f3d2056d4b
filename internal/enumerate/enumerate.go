// Package enumerate walks every legal game of tic-tac-toe and tallies
// the outcomes.
//
// The walk drives the real game engine rather than a duplicate of the
// rules, so the known outcome totals double as an end-to-end check on
// the engine itself.
package enumerate

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/tictactoe-cli/internal/game"
)

// Result holds the outcome tally for a set of complete games. A game is
// a distinct legal move sequence played to its end.
type Result struct {
	XWins int
	OWins int
	Ties  int
}

// Games returns the total number of games in the tally.
func (r Result) Games() int {
	return r.XWins + r.OWins + r.Ties
}

func (r *Result) add(other Result) {
	r.XWins += other.XWins
	r.OWins += other.OWins
	r.Ties += other.Ties
}

// Count exhaustively plays every legal game and returns the totals. The
// tree is split across the nine opening moves; workers bounds how many
// goroutines walk it, with 0 meaning one per CPU.
func Count(ctx context.Context, workers int) (Result, error) {
	openings := game.Size * game.Size
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > openings {
		workers = openings
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan Result, workers)

	for w := 0; w < workers; w++ {
		first := w
		g.Go(func() error {
			var tally Result

			// Walk every workers-th opening starting at this worker's
			// offset, so the nine subtrees spread across the pool.
			for opening := first; opening < openings; opening += workers {
				row, col := opening/game.Size, opening%game.Size
				root := game.New()
				if err := root.Move(row, col); err != nil {
					return fmt.Errorf("opening move (%d,%d): %w", row, col, err)
				}
				if err := walk(root, &tally); err != nil {
					return err
				}
			}

			select {
			case results <- tally:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	var total Result
	for tally := range results {
		total.add(tally)
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return total, nil
}

// walk recurses over every continuation of g, counting each finished
// game once. Each branch advances its own copy of the game.
func walk(g *game.Game, tally *Result) error {
	if g.Finished() {
		outcome, _ := g.Outcome()
		switch outcome {
		case game.XWins:
			tally.XWins++
		case game.OWins:
			tally.OWins++
		case game.Tie:
			tally.Ties++
		}
		return nil
	}

	board := g.Board()
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			if board[row][col].Occupied() {
				continue
			}
			next := *g
			if err := next.Move(row, col); err != nil {
				return fmt.Errorf("move (%d,%d): %w", row, col, err)
			}
			if err := walk(&next, tally); err != nil {
				return err
			}
		}
	}

	return nil
}
