package agent

import (
	"fmt"
	"stonehenge/game"
	"stonehenge/player"

	"github.com/rs/zerolog/log"
)

// InteractiveStrategy asks src for a move, parsing it with the game's own
// parser, until it gets a legal one. It returns nil once src fails.
func InteractiveStrategy(src player.MoveSource) Strategy {
	return func(g game.Game) game.Move {
		state := g.CurrentState()
		prompt := fmt.Sprintf("%s, enter a move: ", state.Player())
		for {
			text, err := src.NextMove(prompt)
			if err != nil {
				log.Warn().Err(err).Msg("no move from move source")
				return nil
			}
			move, err := g.ParseMove(text)
			if err != nil {
				log.Warn().Err(err).Msg("invalid move, try again")
				continue
			}
			if !IsLegal(state, move) {
				log.Warn().Stringer("move", move).Msg("illegal move, try again")
				continue
			}
			return move
		}
	}
}
