package engine

import (
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/game/stonehenge"
	"stonehenge/game/synthetic"
	"stonehenge/player"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedPlayer always answers with the same move.
type fixedPlayer struct {
	move game.Move
}

func (p fixedPlayer) Name() string { return "fixed" }

func (p fixedPlayer) FindMove(game.Game) (game.Move, metrics.SearchMetric) {
	return p.move, metrics.SearchMetric{Strategy: "fixed"}
}

func newAgent(t *testing.T, name string, moves ...string) *agent.Agent {
	t.Helper()
	a, err := agent.New(name, player.NewScript(moves...))
	require.NoError(t, err)
	return a
}

func TestLocalEngine(t *testing.T) {
	t.Run("scripted player against minimax", func(t *testing.T) {
		g, err := stonehenge.New(2, game.PlayerOne)
		require.NoError(t, err)

		var steps []int
		e := NewLocal(g,
			newAgent(t, agent.Interactive, "A", "B", "C", "D", "E", "F", "G"), // Occupied cells are skipped
			newAgent(t, agent.MinimaxIterative),
			WithObserver(func(step int, _ game.Move, _ game.State) { steps = append(steps, step) }),
		)
		winner, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)

		require.NotEqual(t, game.NoPlayer, winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, game.PlayerOne, gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Len(t, steps, len(moveMetrics), "Observer should see every move")
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, game.PlayerOne, mm.Player)
				require.Equal(t, agent.Interactive, mm.Strategy)
			} else {
				require.Equal(t, game.PlayerTwo, mm.Player)
				require.Equal(t, agent.MinimaxIterative, mm.Strategy)
				require.Positive(t, mm.Nodes)
			}
		}
	})

	t.Run("searchers play each other to the end", func(t *testing.T) {
		g, err := stonehenge.New(2, game.PlayerTwo)
		require.NoError(t, err)

		e := NewLocal(g, newAgent(t, agent.RoughOutcome), newAgent(t, agent.MinimaxRecursive))
		winner, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.PlayerTwo, gameMetric.StartingPlayer)
		require.Equal(t, game.PlayerTwo, moveMetrics[0].Player)
		require.Equal(t, winner, gameMetric.Winner)
		require.NotEqual(t, game.NoPlayer, winner, "Stonehenge cannot end drawn")
	})

	t.Run("draws have no winner", func(t *testing.T) {
		g := synthetic.New(synthetic.Branch(synthetic.Branch(synthetic.Leaf(game.NoPlayer))), game.PlayerOne)

		e := NewLocal(g, newAgent(t, agent.MinimaxIterative), newAgent(t, agent.MinimaxRecursive))
		winner, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("stops at the move limit", func(t *testing.T) {
		g, err := stonehenge.New(3, game.PlayerOne)
		require.NoError(t, err)

		e := NewLocal(g, newAgent(t, agent.RoughOutcome), newAgent(t, agent.RoughOutcome), WithMaxMoves(2))
		winner, gameMetric, _, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
	})

	t.Run("a missing move is an error", func(t *testing.T) {
		g, err := stonehenge.New(2, game.PlayerOne)
		require.NoError(t, err)

		e := NewLocal(g, newAgent(t, agent.Interactive), newAgent(t, agent.RoughOutcome))
		_, _, _, err = e.Run()
		require.ErrorContains(t, err, "gave no move")
	})

	t.Run("an illegal move is an error", func(t *testing.T) {
		g, err := stonehenge.New(2, game.PlayerOne)
		require.NoError(t, err)

		e := NewLocal(g, fixedPlayer{move: stonehenge.Move("A")}, fixedPlayer{move: stonehenge.Move("A")})
		_, _, moveMetrics, err := e.Run()
		require.ErrorContains(t, err, "illegal move")
		require.Len(t, moveMetrics, 1, "First move was legal")
	})

	t.Run("needs two players", func(t *testing.T) {
		g, err := stonehenge.New(2, game.PlayerOne)
		require.NoError(t, err)

		require.Panics(t, func() { NewLocal(g, nil, fixedPlayer{}) })
	})
}
