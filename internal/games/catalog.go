// Package games defines a named catalog of pre-built rule trees and their
// initial boards, one entry per bundled game. It wires no
// evaluation or turn-tracking logic of its own: a Game is just a rule and
// a starting position, built by composing the engine's five combinators
// and the pluggable custom symmetries of package symmetry.
package games

import (
	"fmt"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/rule"
)

// Game bundles a move rule with the board a fresh game starts from.
type Game struct {
	Name    string
	Rule    rule.Rule
	Initial board.Board
}

// catalog is populated by each game's init, keyed by its short name.
var catalog = map[string]Game{}

func register(g Game) {
	catalog[g.Name] = g
}

// Get looks up a game by its short name ("tictac", "chess", "othello",
// "snake").
func Get(name string) (Game, error) {
	g, ok := catalog[name]
	if !ok {
		return Game{}, fmt.Errorf("games: no such game %q", name)
	}
	return g, nil
}

// Names returns the catalog's short names in a stable order.
func Names() []string {
	return []string{"tictac", "chess", "othello", "snake"}
}
