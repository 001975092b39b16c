package agent

import (
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/player"
	"stonehenge/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Strategy picks a move for the player to act at g.CurrentState(). Every
// strategy shares this shape so they can be swapped at the call site.
type Strategy func(g game.Game) game.Move

const (
	Interactive      = "interactive"
	RoughOutcome     = "rough-outcome"
	MinimaxRecursive = "minimax-recursive"
	MinimaxIterative = "minimax-iterative"
)

// Names lists the strategies Lookup knows about.
var Names = []string{Interactive, RoughOutcome, MinimaxRecursive, MinimaxIterative}

// FromSearcher turns a searcher into a strategy.
func FromSearcher(name string, s searcher.Searcher) Strategy {
	return func(g game.Game) game.Move {
		result := s.Search(g, g.CurrentState())
		log.Debug().
			Str("strategy", name).
			Stringer("move", result.Move).
			Float64("score", result.Score).
			Msg("picked move")
		return result.Move
	}
}

// Lookup maps a strategy name to a strategy. src is only used, and then
// required, by the interactive strategy.
func Lookup(name string, src player.MoveSource, options ...searcher.Option) (Strategy, error) {
	switch name {
	case Interactive:
		if src == nil {
			return nil, errors.New("interactive strategy needs a move source")
		}
		return InteractiveStrategy(src), nil
	case RoughOutcome:
		return FromSearcher(name, searcher.NewRoughOutcome(options...)), nil
	case MinimaxRecursive:
		return FromSearcher(name, searcher.NewRecursive(options...)), nil
	case MinimaxIterative:
		return FromSearcher(name, searcher.NewIterative(options...)), nil
	}
	return nil, errors.Errorf("unknown strategy %q, want one of %v", name, Names)
}

// Agent is a named strategy that reports how much work each move took.
type Agent struct {
	name     string
	strategy Strategy
	metrics  metrics.Collector
}

func New(name string, src player.MoveSource) (*Agent, error) {
	collector := metrics.NewCollector()
	strategy, err := Lookup(name, src, searcher.WithMetrics(collector))
	if err != nil {
		return nil, err
	}
	return &Agent{name: name, strategy: strategy, metrics: collector}, nil
}

func (a *Agent) Name() string { return a.name }

// FindMove returns the strategy's move, nil if it has none to offer, along
// with the search metrics of this call.
func (a *Agent) FindMove(g game.Game) (game.Move, metrics.SearchMetric) {
	a.metrics.Start(a.name)
	move := a.strategy(g)
	return move, a.metrics.Complete()
}

// IsLegal reports whether move is among the legal moves of state.
func IsLegal(state game.State, move game.Move) bool {
	return move != nil && lo.Contains(state.LegalMoves(), move)
}
