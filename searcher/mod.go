// Package searcher picks moves for the player to act in a finite,
// two-player, zero-sum game with perfect information.
//
// Values follow the negamax convention: a position is scored from the
// perspective of the player to move there, and a parent negates the scores
// of its children.
package searcher

import (
	"stonehenge/experiments/metrics"
	"stonehenge/game"
)

// Result is a chosen move and its value for the player who makes it.
type Result struct {
	Move  game.Move
	Score float64
}

type Searcher interface {
	// Search picks a move at state. state must not be terminal.
	Search(g game.Game, state game.State) Result
}

type Option func(c *config)

type config struct {
	metrics metrics.Collector
	onTree  func(root *Node)
}

// WithMetrics counts the work of every search into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithTree hands the materialized search tree to fn once an iterative
// search completes. Other searchers ignore it.
func WithTree(fn func(root *Node)) Option {
	return func(c *config) {
		c.onTree = fn
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func mustHaveMoves(state game.State) []game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot pick a move at a terminal state")
	}
	return moves
}

// negate flips a value to the other player's perspective. Draws stay +0 so
// scores compare bit for bit across searchers.
func negate(score float64) float64 {
	return 0 - score
}
