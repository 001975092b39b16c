package searcher

import (
	"math"
	"stonehenge/game"
)

var _ Searcher = &RoughOutcome{}

// RoughOutcome picks the move leaving the opponent the worst rough outcome.
// It looks no deeper than State.RoughOutcome does and gives no guarantee of
// optimal play.
type RoughOutcome struct {
	config
}

func NewRoughOutcome(options ...Option) *RoughOutcome {
	return &RoughOutcome{config: newConfig(options)}
}

func (r *RoughOutcome) Search(_ game.Game, state game.State) Result {
	moves := mustHaveMoves(state)
	r.metrics.AddNode()
	r.metrics.AddExpansion()

	best := Result{Score: math.Inf(-1)}
	for _, move := range moves {
		r.metrics.AddNode()
		// A state that's bad for the opponent is good for us
		if score := negate(state.Play(move).RoughOutcome()); score > best.Score {
			best = Result{Move: move, Score: score}
		}
	}
	r.metrics.ObserveDepth(1)
	return best
}
