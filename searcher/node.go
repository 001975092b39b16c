package searcher

import (
	"stonehenge/game"

	"github.com/samber/lo"
)

// Node wraps one state of an iterative search. Children are created at most
// once, one per legal move and in the same order, and are owned by the node.
type Node struct {
	state    game.State
	moves    []game.Move
	children []*Node
	depth    int // Plies below the search root
	score    float64
	scored   bool
}

func newNode(state game.State, depth int) *Node {
	return &Node{state: state, depth: depth}
}

func (n *Node) State() game.State { return n.state }

// Moves returns the legal moves the children correspond to.
func (n *Node) Moves() []game.Move { return n.moves }

func (n *Node) Children() []*Node { return n.children }

func (n *Node) Depth() int { return n.depth }

// Score returns the node's negamax value, if it has been finalized.
func (n *Node) Score() (float64, bool) { return n.score, n.scored }

func (n *Node) isExpanded() bool { return len(n.children) > 0 }

func (n *Node) expand(moves []game.Move) {
	if n.isExpanded() {
		panic("node already expanded")
	}
	n.moves = moves
	n.children = lo.Map(moves, func(move game.Move, _ int) *Node {
		return newNode(n.state.Play(move), n.depth+1)
	})
}

func (n *Node) finalize(score float64) {
	if n.scored {
		panic("node already finalized")
	}
	n.score = score
	n.scored = true
}

// childValues returns each child's score negated to this node's perspective.
func (n *Node) childValues() []float64 {
	return lo.Map(n.children, func(child *Node, _ int) float64 {
		if !child.scored {
			panic("finalizing a node with an unscored child")
		}
		return negate(child.score)
	})
}
