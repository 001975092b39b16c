package engine

import (
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Player is one side of a local game.
type Player interface {
	Name() string
	FindMove(g game.Game) (game.Move, metrics.SearchMetric)
}

var _ Player = &agent.Agent{}

type Option func(e *LocalEngine)

// WithMaxMoves stops the game after the given number of moves.
func WithMaxMoves(moves int) Option {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithObserver calls fn after every move with the state it produced.
func WithObserver(fn func(step int, move game.Move, state game.State)) Option {
	return func(e *LocalEngine) {
		e.observe = fn
	}
}

var _ Engine = &LocalEngine{}

// LocalEngine plays a game in-process between two players.
type LocalEngine struct {
	game     game.Game
	players  map[game.Player]Player
	maxMoves int
	observe  func(step int, move game.Move, state game.State)
}

func NewLocal(g game.Game, p1, p2 Player, options ...Option) *LocalEngine {
	if p1 == nil || p2 == nil {
		panic("need two players")
	}
	e := &LocalEngine{
		game:     g,
		players:  map[game.Player]Player{game.PlayerOne: p1, game.PlayerTwo: p2},
		maxMoves: MaxMoves,
		observe:  func(int, game.Move, game.State) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.game.CurrentState()
	gameMetric := metrics.GameMetric{
		StartingPlayer: state.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", state.Player())

	step := 1
	for !e.game.IsOver(state) && step <= e.maxMoves {
		mover := state.Player()
		p := e.players[mover]

		move, searchMetric := p.FindMove(game.At(e.game, state))
		if move == nil {
			return game.NoPlayer, gameMetric, moveMetrics, errors.Errorf("%s (%s) gave no move at step %d", mover, p.Name(), step)
		}
		if !agent.IsLegal(state, move) {
			return game.NoPlayer, gameMetric, moveMetrics, errors.Errorf("%s (%s) played illegal move %v at step %d", mover, p.Name(), move, step)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s (%s) plays %v after %d nodes", step, mover, p.Name(), move, searchMetric.Nodes)

		state = state.Play(move)
		e.observe(step, move, state)
		step++
	}

	winner := game.NoPlayer
	for _, p := range []game.Player{game.PlayerOne, game.PlayerTwo} {
		if e.game.IsWinner(state, p) {
			winner = p
		}
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if e.game.IsOver(state) {
		log.Info().Msgf("game over after %d moves, winner: %q", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, nil
}
