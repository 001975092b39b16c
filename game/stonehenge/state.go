package stonehenge

import (
	"fmt"

	"stonehenge/game"
)

// Move claims the cell with the given letter.
type Move string

func (m Move) String() string { return string(m) }

var _ game.State = &State{}

// State is one position of a Stonehenge game. It is never mutated after
// construction; Play returns a fresh copy.
type State struct {
	board  *board
	owner  []game.Player // per cell, NoPlayer if unclaimed
	claims []game.Player // per ley line, NoPlayer if unclaimed
	toMove game.Player
}

func newState(b *board, first game.Player) *State {
	return &State{
		board:  b,
		owner:  make([]game.Player, len(b.cells)),
		claims: make([]game.Player, len(b.lines)),
		toMove: first,
	}
}

func (s *State) Player() game.Player {
	return s.toMove
}

func (s *State) LegalMoves() []game.Move {
	if s.Winner() != game.NoPlayer {
		return []game.Move{}
	}
	moves := make([]game.Move, 0, len(s.owner))
	for i, owner := range s.owner {
		if owner == game.NoPlayer {
			moves = append(moves, s.board.cells[i])
		}
	}
	return moves
}

func (s *State) Play(move game.Move) game.State {
	m, _ := move.(Move)
	cell, ok := s.board.index[m]
	if !ok || s.owner[cell] != game.NoPlayer {
		panic(fmt.Sprintf("illegal move %v", move))
	}

	next := &State{
		board:  s.board,
		owner:  make([]game.Player, len(s.owner)),
		claims: make([]game.Player, len(s.claims)),
		toMove: s.toMove.Opponent(),
	}
	copy(next.owner, s.owner)
	copy(next.claims, s.claims)

	next.owner[cell] = s.toMove
	for _, line := range s.board.ofCell[cell] {
		if next.claims[line] != game.NoPlayer {
			continue // Claims are permanent
		}
		held := 0
		for _, c := range s.board.lines[line] {
			if next.owner[c] == s.toMove {
				held++
			}
		}
		if 2*held >= len(s.board.lines[line]) {
			next.claims[line] = s.toMove
		}
	}
	return next
}

// Lines returns the number of ley lines claimed by p.
func (s *State) Lines(p game.Player) int {
	total := 0
	for _, claim := range s.claims {
		if claim == p {
			total++
		}
	}
	return total
}

// Winner returns the player holding a majority of ley lines, if any.
func (s *State) Winner() game.Player {
	for _, p := range []game.Player{game.PlayerOne, game.PlayerTwo} {
		if s.Lines(p) >= s.board.winningLines() {
			return p
		}
	}
	return game.NoPlayer
}

// Owner returns who claimed the cell, NoPlayer if it is free or unknown.
func (s *State) Owner(cell Move) game.Player {
	i, ok := s.board.index[cell]
	if !ok {
		return game.NoPlayer
	}
	return s.owner[i]
}

// RoughOutcome looks at most two plies ahead:
// WIN if some move wins at once, LOSS if every move hands the opponent an
// immediate win, DRAW otherwise.
func (s *State) RoughOutcome() float64 {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return s.score()
	}

	children := make([]*State, len(moves))
	for i, move := range moves {
		children[i] = s.Play(move).(*State)
		if children[i].Winner() == s.toMove {
			return game.Win
		}
	}

	for _, child := range children {
		if !child.opponentWinsNext() {
			return game.Draw
		}
	}
	return game.Loss
}

// opponentWinsNext reports whether the player to move can win in one move.
func (s *State) opponentWinsNext() bool {
	if s.Winner() != game.NoPlayer {
		return s.Winner() == s.toMove
	}
	for _, move := range s.LegalMoves() {
		if s.Play(move).(*State).Winner() == s.toMove {
			return true
		}
	}
	return false
}

func (s *State) score() float64 {
	switch s.Winner() {
	case game.NoPlayer:
		return game.Draw
	case s.toMove:
		return game.Win
	}
	return game.Loss
}

func (s *State) String() string {
	return fmt.Sprintf("Current player: %s, player 1 has %d ley line(s), player 2 has %d ley line(s)",
		s.toMove, s.Lines(game.PlayerOne), s.Lines(game.PlayerTwo))
}
