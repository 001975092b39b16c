package searcher

import (
	"math"
	"stonehenge/game"
)

var _ Searcher = &Recursive{}

// Recursive is an exhaustive negamax search on the call stack. Memory grows
// with the number of plies left, time with the size of the game tree.
type Recursive struct {
	config
}

func NewRecursive(options ...Option) *Recursive {
	return &Recursive{config: newConfig(options)}
}

func (r *Recursive) Search(g game.Game, state game.State) Result {
	moves := mustHaveMoves(state)
	r.metrics.AddNode()
	r.metrics.AddExpansion()

	best := Result{Score: math.Inf(-1)}
	for _, move := range moves {
		// Strictly greater keeps the first best move
		if score := negate(r.value(g, state.Play(move), 1)); score > best.Score {
			best = Result{Move: move, Score: score}
		}
	}
	return best
}

// value returns the negamax value of state for the player to move there.
func (r *Recursive) value(g game.Game, state game.State, depth int) float64 {
	r.metrics.AddNode()
	r.metrics.ObserveDepth(depth)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		r.metrics.AddLeaf()
		return game.TerminalScore(g, state)
	}

	r.metrics.AddExpansion()
	best := math.Inf(-1)
	for _, move := range moves {
		best = math.Max(best, negate(r.value(g, state.Play(move), depth+1)))
	}
	return best
}
