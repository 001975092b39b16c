package synthetic

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"stonehenge/game"
)

var _ game.Game = &Game{}
var _ game.State = State{}

// State is a position in a synthetic tree together with the player to move.
type State struct {
	node   *Node
	toMove game.Player
}

func (s State) Node() *Node { return s.node }

func (s State) Player() game.Player { return s.toMove }

func (s State) LegalMoves() []game.Move {
	moves := make([]game.Move, len(s.node.Children))
	for i := range s.node.Children {
		moves[i] = Move(i)
	}
	return moves
}

func (s State) Play(move game.Move) game.State {
	m, ok := move.(Move)
	if !ok || int(m) < 0 || int(m) >= len(s.node.Children) {
		panic("illegal move " + move.String())
	}
	return State{node: s.node.Children[m], toMove: s.toMove.Opponent()}
}

// RoughOutcome scores terminal states exactly and otherwise looks two plies
// ahead for immediate wins.
func (s State) RoughOutcome() float64 {
	if len(s.node.Children) == 0 {
		return outcome(s.node, s.toMove)
	}
	for _, child := range s.node.Children {
		if len(child.Children) == 0 && child.Winner == s.toMove {
			return game.Win
		}
	}
	opponent := s.toMove.Opponent()
	for _, child := range s.node.Children {
		if !winsAtOnce(child, opponent) {
			return game.Draw
		}
	}
	return game.Loss
}

// winsAtOnce reports whether p, to move at n, has already won or wins with
// one move.
func winsAtOnce(n *Node, p game.Player) bool {
	if len(n.Children) == 0 {
		return n.Winner == p
	}
	for _, child := range n.Children {
		if len(child.Children) == 0 && child.Winner == p {
			return true
		}
	}
	return false
}

func outcome(n *Node, mover game.Player) float64 {
	switch n.Winner {
	case game.NoPlayer:
		return game.Draw
	case mover:
		return game.Win
	}
	return game.Loss
}

// Game wraps a tree rooted at the current state.
type Game struct {
	root State
}

// New returns a game positioned at root with first to move.
func New(root *Node, first game.Player) *Game {
	return &Game{root: State{node: root, toMove: first}}
}

func (g *Game) CurrentState() game.State { return g.root }

func (g *Game) IsOver(s game.State) bool {
	return len(s.LegalMoves()) == 0
}

func (g *Game) IsWinner(s game.State, p game.Player) bool {
	st, ok := s.(State)
	if !ok {
		panic("unexpected state type")
	}
	return len(st.node.Children) == 0 && st.node.Winner == p
}

// ParseMove accepts a child index, with or without a leading '#'.
func (g *Game) ParseMove(text string) (game.Move, error) {
	i, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(text), "#"))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse move %q", text)
	}
	if i < 0 {
		return nil, errors.Errorf("negative move %d", i)
	}
	return Move(i), nil
}
