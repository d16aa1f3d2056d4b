// Package game implements the rules of two-player 3x3 tic-tac-toe.
//
// The main type is Game, which owns the board, tracks whose turn it is,
// and decides the outcome (win or tie) as moves are played.
//
// # Basic Usage
//
// Create a game and feed it moves until it reports completion:
//
//	g := game.New()
//	for !g.Finished() {
//	    if err := g.Move(row, col); err != nil {
//	        // out of range, cell taken, or game over
//	    }
//	}
//	outcome, _ := g.Outcome()
//
// # Error Handling
//
// Move never panics. Illegal moves are reported as distinguishable error
// values (ErrGameOver, OutOfRangeError, OccupiedError) and leave the game
// unchanged, so callers own all retry and messaging behaviour.
package game
