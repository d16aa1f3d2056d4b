package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tictactoe-cli/internal/enumerate"
)

type EnumerateCmd struct {
	Workers int  `help:"Worker goroutines (0 = one per CPU)" default:"0"`
	Quiet   bool `help:"Print totals only, one line"`
}

func (c *EnumerateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if !c.Quiet {
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("enumerating games", "workers", c.Workers)

	clock := quartz.NewReal()
	start := clock.Now()
	result, err := enumerate.Count(context.Background(), c.Workers)
	if err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}
	elapsed := clock.Since(start)

	if c.Quiet {
		fmt.Printf("%d %d %d %d\n", result.Games(), result.XWins, result.OWins, result.Ties)
		return nil
	}

	fmt.Printf("Enumerated %d games in %s (%.0f games/sec)\n",
		result.Games(), elapsed.Round(time.Millisecond), float64(result.Games())/elapsed.Seconds())
	fmt.Printf("  x wins: %d\n", result.XWins)
	fmt.Printf("  o wins: %d\n", result.OWins)
	fmt.Printf("  ties:   %d\n", result.Ties)

	return nil
}
