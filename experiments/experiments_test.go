package experiments

import (
	"context"
	"os"
	"path/filepath"
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	setup := Setup{
		Name:        "smoke",
		BoardSize:   1,
		NumGames:    4,
		Concurrency: 3,
		MaxTurns:    10,
		Matchups: [][2]string{
			{agent.RoughOutcome, agent.MinimaxIterative},
			{agent.MinimaxRecursive, agent.MinimaxIterative},
		},
	}

	results, err := Run(context.Background(), setup)
	require.NoError(t, err)

	wantAgents := []metrics.AgentConfig{
		{ID: 1, Strategy: agent.RoughOutcome},
		{ID: 2, Strategy: agent.MinimaxIterative},
		{ID: 3, Strategy: agent.MinimaxRecursive},
	}
	if diff := cmp.Diff(wantAgents, results.Agents); diff != "" {
		t.Errorf("agents mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, results.Games, 8)
	for i, g := range results.Games {
		require.Equal(t, i+1, g.ID, "Games should be sorted by id")
		// On a size 1 board the first move wins
		require.Equal(t, g.StartingPlayer, g.Winner)
		require.Equal(t, 1, g.TotalMoves)
		if i%2 == 0 {
			require.Equal(t, game.PlayerOne, g.StartingPlayer, "Starts should alternate")
		} else {
			require.Equal(t, game.PlayerTwo, g.StartingPlayer, "Starts should alternate")
		}
	}

	require.Len(t, results.Moves, 8)
	for i, m := range results.Moves {
		require.Equal(t, i+1, m.Game)
		require.Equal(t, 1, m.Step)
	}

	want := map[string]int{
		agent.RoughOutcome:     2,
		agent.MinimaxRecursive: 2,
		agent.MinimaxIterative: 4,
	}
	require.Equal(t, want, results.Wins())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Setup{
		Name:      "cancelled",
		BoardSize: 1,
		NumGames:  2,
		MaxTurns:  10,
		Matchups:  [][2]string{{agent.RoughOutcome, agent.MinimaxIterative}},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunBadBoard(t *testing.T) {
	_, err := Run(context.Background(), Setup{
		Name:      "bad",
		BoardSize: 0,
		NumGames:  1,
		MaxTurns:  10,
		Matchups:  [][2]string{{agent.RoughOutcome, agent.MinimaxIterative}},
	})
	require.ErrorContains(t, err, "game 1")
}

func TestStore(t *testing.T) {
	setup := Setup{
		Name:      "stored",
		BoardSize: 1,
		NumGames:  2,
		MaxTurns:  10,
		Matchups:  [][2]string{{agent.MinimaxRecursive, agent.RoughOutcome}},
	}
	results, err := Run(context.Background(), setup)
	require.NoError(t, err)

	w, err := metrics.NewWriter(t.TempDir(), setup.Name)
	require.NoError(t, err)
	start := time.Now()
	require.NoError(t, Store(w, setup, results, start, start.Add(time.Second)))

	for _, name := range []string{"setup.yaml", "game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(w.Dir(), name))
		require.NoError(t, err, name)
		require.Positive(t, info.Size(), name)
	}
}

func TestRunThroughput(t *testing.T) {
	setup := ThroughputSetup{
		Seed:         17,
		NumTrees:     5,
		MaxDepth:     5,
		MaxBranching: 3,
		Strategies:   []string{agent.MinimaxRecursive, agent.MinimaxIterative},
	}

	records, err := RunThroughput(setup)
	require.NoError(t, err)
	require.Len(t, records, 10)

	for i, r := range records {
		require.Equal(t, i%5+1, r.Tree)
		require.Equal(t, r.TreeNodes, r.Nodes, "Exhaustive search should visit the whole tree")
		require.Equal(t, r.TreeLeaves, r.Leaves)
		if r.Strategy == agent.MinimaxIterative {
			require.Equal(t, 2*r.TreeNodes-r.TreeLeaves, r.Pops)
		} else {
			require.Zero(t, r.Pops)
		}
	}

	again, err := RunThroughput(setup)
	require.NoError(t, err)
	for i := range records {
		require.Equal(t, records[i].TreeNodes, again[i].TreeNodes, "Same seed should give the same trees")
	}

	t.Run("interactive cannot be measured", func(t *testing.T) {
		setup := setup
		setup.Strategies = []string{agent.Interactive}
		_, err := RunThroughput(setup)
		require.Error(t, err)
	})

	t.Run("needs positive bounds", func(t *testing.T) {
		setup := setup
		setup.MaxDepth = 0
		_, err := RunThroughput(setup)
		require.Error(t, err)
	})
}
