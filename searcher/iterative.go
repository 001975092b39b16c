package searcher

import (
	"math"
	"stonehenge/game"
	"stonehenge/utils"

	"github.com/samber/lo"
)

var _ Searcher = &Iterative{}

// Iterative is the negamax search of Recursive driven by an explicit work
// stack instead of the call stack. It materializes the whole game tree on
// the heap, so native stack depth stays constant however deep the game is.
type Iterative struct {
	config
}

func NewIterative(options ...Option) *Iterative {
	return &Iterative{config: newConfig(options)}
}

func (it *Iterative) Search(g game.Game, state game.State) Result {
	mustHaveMoves(state)

	root := newNode(state, 0)
	it.metrics.AddNode()
	it.evaluate(g, root)

	if it.onTree != nil {
		it.onTree(root)
	}

	// First child whose negated score reaches the root's
	values := root.childValues()
	ith := utils.FindIndex(values, root.score)
	if ith < 0 {
		panic("root score matches none of its children")
	}
	return Result{Move: root.moves[ith], Score: root.score}
}

// evaluate scores every node under root in postorder. A node is popped once
// to expand it and, unless terminal, once more after all its children have
// been scored.
func (it *Iterative) evaluate(g game.Game, root *Node) {
	stack := &workStack{}
	stack.push(root)

	for !stack.isEmpty() {
		node := stack.pop()
		it.metrics.AddPop()

		if node.isExpanded() { // Second visit
			node.finalize(lo.Reduce(node.childValues(), func(best, v float64, _ int) float64 {
				return math.Max(best, v)
			}, math.Inf(-1)))
			continue
		}

		it.metrics.ObserveDepth(node.depth)

		moves := node.state.LegalMoves()
		if len(moves) == 0 { // Terminal, never revisited
			it.metrics.AddLeaf()
			node.finalize(game.TerminalScore(g, node.state))
			continue
		}

		it.metrics.AddExpansion()
		node.expand(moves)
		stack.push(node)
		for _, child := range node.children {
			it.metrics.AddNode()
			stack.push(child)
		}
	}

	if !root.scored {
		panic("search finished without scoring the root")
	}
}
