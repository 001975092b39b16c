// Package synthetic provides explicit finite game trees. Every node is a
// position; a node without children is terminal and may name a winner.
package synthetic

import (
	"fmt"

	"golang.org/x/exp/rand"

	"stonehenge/game"
)

// Node is a position of a synthetic game.
type Node struct {
	Winner   game.Player // Only meaningful for terminal nodes
	Children []*Node
}

// Leaf returns a terminal node won by winner, or drawn for NoPlayer.
func Leaf(winner game.Player) *Node {
	return &Node{Winner: winner}
}

// Branch returns an internal node with the given children.
func Branch(children ...*Node) *Node {
	if len(children) == 0 {
		panic("branch needs at least one child")
	}
	return &Node{Children: children}
}

// Uniform builds a complete tree of the given depth and branching factor.
// leaf decides the winner of each terminal node from its path of child
// indices.
func Uniform(depth, branching int, leaf func(path []int) game.Player) *Node {
	return uniform(nil, depth, branching, leaf)
}

func uniform(path []int, depth, branching int, leaf func([]int) game.Player) *Node {
	if depth == 0 {
		return Leaf(leaf(path))
	}
	children := make([]*Node, branching)
	for i := range children {
		childPath := append(append(make([]int, 0, len(path)+1), path...), i)
		children[i] = uniform(childPath, depth-1, branching, leaf)
	}
	return Branch(children...)
}

// Random builds a tree whose internal nodes have between 1 and maxBranching
// children and whose leaves sit at depth at most maxDepth. The root is never
// terminal. Leaves are won by either player or drawn with equal probability.
func Random(rng *rand.Rand, maxDepth, maxBranching int) *Node {
	if maxDepth < 1 || maxBranching < 1 {
		panic("random tree needs positive depth and branching")
	}
	return randomBranch(rng, maxDepth, maxBranching)
}

func randomBranch(rng *rand.Rand, depth, maxBranching int) *Node {
	children := make([]*Node, 1+rng.Intn(maxBranching))
	for i := range children {
		children[i] = randomNode(rng, depth-1, maxBranching)
	}
	return Branch(children...)
}

func randomNode(rng *rand.Rand, depth, maxBranching int) *Node {
	if depth == 0 || rng.Intn(4) == 0 { // Stop early a quarter of the time
		outcomes := []game.Player{game.PlayerOne, game.PlayerTwo, game.NoPlayer}
		return Leaf(outcomes[rng.Intn(len(outcomes))])
	}
	return randomBranch(rng, depth, maxBranching)
}

// Count returns the number of nodes and terminal nodes under n, n included.
func (n *Node) Count() (nodes, leaves int) {
	if len(n.Children) == 0 {
		return 1, 1
	}
	nodes = 1
	for _, child := range n.Children {
		cn, cl := child.Count()
		nodes += cn
		leaves += cl
	}
	return nodes, leaves
}

// Depth returns the number of plies on the longest path below n.
func (n *Node) Depth() int {
	depth := 0
	for _, child := range n.Children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Move selects the child with the given index.
type Move int

func (m Move) String() string { return fmt.Sprintf("#%d", int(m)) }
