package stonehenge

import (
	"strings"

	"github.com/pkg/errors"

	"stonehenge/game"
)

var _ game.Game = &Game{}

// Game is a Stonehenge game: players take turns claiming cells and the first
// to hold at least half of the cells of a ley line claims it. Claiming at
// least half of the ley lines wins.
type Game struct {
	board *board
	start *State
}

// New creates a game on a board of the given side length.
func New(size int, first game.Player) (*Game, error) {
	if first != game.PlayerOne && first != game.PlayerTwo {
		return nil, errors.Errorf("unknown first player %q", first)
	}
	b, err := newBoard(size)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stonehenge game")
	}
	return &Game{board: b, start: newState(b, first)}, nil
}

func (g *Game) Size() int { return g.board.size }

func (g *Game) CurrentState() game.State { return g.start }

func (g *Game) IsOver(s game.State) bool {
	return len(s.LegalMoves()) == 0
}

func (g *Game) IsWinner(s game.State, p game.Player) bool {
	st, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	return st.Winner() == p
}

// ParseMove normalizes user input into a cell letter of this board.
func (g *Game) ParseMove(text string) (game.Move, error) {
	m := Move(strings.ToUpper(strings.TrimSpace(text)))
	if _, ok := g.board.index[m]; !ok {
		return nil, errors.Errorf("%q is not a cell of a size %d board", text, g.board.size)
	}
	return m, nil
}

// Replay plays moves from the starting position, for setting up positions.
func (g *Game) Replay(moves ...string) (*State, error) {
	state := g.start
	for _, text := range moves {
		m, err := g.ParseMove(text)
		if err != nil {
			return nil, err
		}
		if state.Owner(m.(Move)) != game.NoPlayer || g.IsOver(state) {
			return nil, errors.Errorf("move %s is not legal in %v", m, state)
		}
		state = state.Play(m).(*State)
	}
	return state, nil
}

func (g *Game) Instructions() string {
	return "Players take turns claiming cells. A player who captures at least half of the cells " +
		"in a ley-line claims it, and claiming at least half of the ley-lines wins."
}
