// Package player supplies move text typed by a person, or replayed from a
// script, to the interactive strategy.
package player

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// MoveSource returns the next move as raw text. It returns io.EOF once no
// more input will arrive.
type MoveSource interface {
	NextMove(prompt string) (string, error)
}

// Console prompts on out and reads one move per line from in.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) NextMove(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return "", errors.Wrap(err, "cannot write prompt")
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "cannot read move")
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// Script replays a fixed list of moves.
type Script struct {
	moves []string
}

func NewScript(moves ...string) *Script {
	return &Script{moves: moves}
}

func (s *Script) NextMove(string) (string, error) {
	if len(s.moves) == 0 {
		return "", io.EOF
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}
