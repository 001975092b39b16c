package game

// Player identifies one of the two sides of a game.
type Player string

const (
	PlayerOne Player = "p1"
	PlayerTwo Player = "p2"
	NoPlayer  Player = ""
)

// Opponent returns the other side. Panics for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	panic("no opponent for player " + string(p))
}

// Move is an opaque legal transition. Implementations must be comparable.
type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	// LegalMoves is empty iff the state is terminal
	LegalMoves() []Move
	Play(Move) State
	// RoughOutcome estimates in [-1, 1] the outcome for Player() by looking
	// at most two plies ahead
	RoughOutcome() float64
}

// Game holds the rules a search needs beyond a single state.
type Game interface {
	CurrentState() State
	IsOver(State) bool
	IsWinner(State, Player) bool
	ParseMove(string) (Move, error)
}

const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// TerminalScore scores a finished state from the perspective of its mover.
func TerminalScore(g Game, s State) float64 {
	mover := s.Player()
	if g.IsWinner(s, mover) {
		return Win
	}
	if g.IsWinner(s, mover.Opponent()) {
		return Loss
	}
	return Draw
}

type view struct {
	Game
	state State
}

func (v view) CurrentState() State { return v.state }

// At returns g as seen from state s. g itself is left untouched.
func At(g Game, s State) Game {
	if v, ok := g.(view); ok {
		g = v.Game
	}
	return view{Game: g, state: s}
}
