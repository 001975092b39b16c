package synthetic

import (
	"stonehenge/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	p1   = game.PlayerOne
	p2   = game.PlayerTwo
	none = game.NoPlayer
)

func TestTree(t *testing.T) {
	t.Run("count and depth", func(t *testing.T) {
		tree := Branch(
			Branch(Leaf(p1), Leaf(p2)),
			Leaf(none),
		)
		nodes, leaves := tree.Count()

		require.Equal(t, 5, nodes)
		require.Equal(t, 3, leaves)
		require.Equal(t, 2, tree.Depth())
		require.Equal(t, 0, Leaf(p1).Depth())
	})

	t.Run("branch needs children", func(t *testing.T) {
		require.Panics(t, func() { Branch() })
	})

	t.Run("uniform tree", func(t *testing.T) {
		var paths [][]int
		tree := Uniform(2, 3, func(path []int) game.Player {
			paths = append(paths, path)
			return p1
		})
		nodes, leaves := tree.Count()

		require.Equal(t, 1+3+9, nodes)
		require.Equal(t, 9, leaves)
		require.Equal(t, 2, tree.Depth())
		require.Equal(t, []int{0, 0}, paths[0])
		require.Equal(t, []int{2, 2}, paths[8])
	})

	t.Run("random tree respects its bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			tree := Random(rng, 4, 3)

			require.NotEmpty(t, tree.Children, "Root should never be terminal")
			require.LessOrEqual(t, tree.Depth(), 4)
			var check func(n *Node)
			check = func(n *Node) {
				require.LessOrEqual(t, len(n.Children), 3)
				for _, child := range n.Children {
					check(child)
				}
			}
			check(tree)
		}
	})

	t.Run("random tree is reproducible", func(t *testing.T) {
		a := Random(rand.New(rand.NewSource(42)), 5, 4)
		b := Random(rand.New(rand.NewSource(42)), 5, 4)
		require.Equal(t, a, b)
	})

	t.Run("random tree needs positive bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		require.Panics(t, func() { Random(rng, 0, 3) })
		require.Panics(t, func() { Random(rng, 3, 0) })
	})
}

func TestState(t *testing.T) {
	g := New(Branch(Leaf(p2), Branch(Leaf(p1))), p1)
	start := g.CurrentState()

	require.Equal(t, p1, start.Player())
	require.Equal(t, []game.Move{Move(0), Move(1)}, start.LegalMoves())

	next := start.Play(Move(1))
	require.Equal(t, p2, next.Player())
	require.False(t, g.IsOver(next))
	require.False(t, g.IsWinner(next, p1), "Internal nodes have no winner")

	end := next.Play(Move(0))
	require.True(t, g.IsOver(end))
	require.True(t, g.IsWinner(end, p1))
	require.False(t, g.IsWinner(end, p2))

	require.Panics(t, func() { start.Play(Move(2)) })
	require.Panics(t, func() { start.Play(Move(-1)) })
}

func TestRoughOutcome(t *testing.T) {
	tests := []struct {
		name string
		tree *Node
		want float64
	}{
		{"terminal win", Leaf(p1), game.Win},
		{"terminal loss", Leaf(p2), game.Loss},
		{"terminal draw", Leaf(none), game.Draw},
		{"immediate win", Branch(Leaf(none), Leaf(p1)), game.Win},
		{"every move lets the opponent win", Branch(Branch(Leaf(p2)), Leaf(p2)), game.Loss},
		{"some move holds", Branch(Branch(Leaf(p2)), Branch(Leaf(none))), game.Draw},
		{"deep loss is not seen", Branch(Branch(Branch(Branch(Leaf(p2))))), game.Draw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.tree, p1)
			require.Equal(t, tt.want, g.CurrentState().RoughOutcome())
		})
	}
}

func TestParseMove(t *testing.T) {
	g := New(Leaf(none), p1)

	for _, text := range []string{"#3", "3", " #3 "} {
		m, err := g.ParseMove(text)
		require.NoError(t, err)
		require.Equal(t, Move(3), m)
	}
	for _, text := range []string{"", "#", "x", "-1"} {
		_, err := g.ParseMove(text)
		require.Error(t, err, "%q should not parse", text)
	}
	require.Equal(t, "#3", Move(3).String())
}
