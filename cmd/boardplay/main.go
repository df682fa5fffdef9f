// boardplay drives one turn of a catalog game: given --game, it prints
// the starting board and the set of boards reachable by one rule
// application. The full interactive terminal UI (cursor, highlighted
// selection, a persistent event loop) is an external collaborator this
// binary only demonstrates the engine API for; see internal/render and
// internal/games.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/config"
	"github.com/lgbarn/boardalgebra/internal/games"
	"github.com/lgbarn/boardalgebra/internal/render"
)

const programVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var gameName string
	var border bool
	var showAll bool
	var verbose bool

	root := &cobra.Command{
		Use:     "boardplay",
		Short:   "Play one turn of a catalog board game",
		Version: programVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTurn(cmd.OutOrStdout(), cmd.ErrOrStderr(), gameName, border, showAll, verbose)
		},
	}
	root.Flags().StringVar(&gameName, "game", "tictac", fmt.Sprintf("game to play: one of %v", games.Names()))
	root.Flags().BoolVar(&border, "border", true, "draw a border around rendered boards")
	root.Flags().BoolVar(&showAll, "all", false, "print every reachable successor, not just the count")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "print running commentary to stderr")
	return root
}

func runTurn(out, errOut io.Writer, gameName string, border, showAll, verbose bool) error {
	g, err := games.Get(gameName)
	if err != nil {
		return err
	}
	builder := config.NewConfigBuilder().WithGame(gameName).WithBorder(border).WithLogOutput(errOut)
	if verbose {
		builder = builder.WithVerbosity(2)
	}
	cfg := builder.Build()
	logf(cfg, "loaded game %q\n", g.Name)

	fmt.Fprintf(out, "%s: starting position\n", g.Name)
	printBoard(out, g.Initial, cfg)

	successors, err := g.Rule.ApplyOne(g.Initial)
	if err != nil {
		return fmt.Errorf("evaluating %s's opening rule: %w", g.Name, err)
	}
	logf(cfg, "rule evaluation visited %d distinct successor board(s)\n", len(successors))
	fmt.Fprintf(out, "\n%d reachable board(s)\n", len(successors))
	if !showAll {
		return nil
	}
	for i, s := range successors {
		fmt.Fprintf(out, "\n--- successor %d ---\n", i+1)
		printBoard(out, s, cfg)
	}
	return nil
}

// logf writes running commentary to cfg.LogFile, gated on Verbosity >= 2.
func logf(cfg *config.Config, format string, args ...interface{}) {
	if cfg.Verbosity < 2 {
		return
	}
	fmt.Fprintf(cfg.LogFile, format, args...)
}

func printBoard(out io.Writer, b board.Board, cfg *config.Config) {
	lines := render.Lines(b, render.Options{
		Border: cfg.Render.Border,
		Empty:  cfg.Render.Empty,
	})
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}
