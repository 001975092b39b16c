package stonehenge

import "github.com/pkg/errors"

const (
	MinSize = 1
	MaxSize = 5
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// board is the static geometry shared by every state of one game.
//
// Rows 1..n hold r+1 cells in columns 0..r, the last row holds n cells in
// columns 1..n. A ley line is a row, a column (down-left) or a constant
// column-row diagonal (down-right).
type board struct {
	size   int
	cells  []Move
	lines  [][]int // ley line -> cell indices
	ofCell [][]int // cell -> ley line indices
	index  map[Move]int
}

type coord struct{ row, col int }

func newBoard(size int) (*board, error) {
	if size < MinSize || size > MaxSize {
		return nil, errors.Errorf("board size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}

	var coords []coord
	for row := 1; row <= size; row++ {
		for col := 0; col <= row; col++ {
			coords = append(coords, coord{row, col})
		}
	}
	for col := 1; col <= size; col++ {
		coords = append(coords, coord{size + 1, col})
	}

	b := &board{
		size:   size,
		cells:  make([]Move, len(coords)),
		ofCell: make([][]int, len(coords)),
		index:  make(map[Move]int, len(coords)),
	}
	for i := range coords {
		b.cells[i] = Move(letters[i : i+1])
		b.index[b.cells[i]] = i
	}

	// Horizontal lines first, then down-right, then down-left
	for row := 1; row <= size+1; row++ {
		b.addLine(coords, func(c coord) bool { return c.row == row })
	}
	for diff := -size; diff <= 0; diff++ {
		b.addLine(coords, func(c coord) bool { return c.col-c.row == diff })
	}
	for col := 0; col <= size; col++ {
		b.addLine(coords, func(c coord) bool { return c.col == col })
	}

	return b, nil
}

func (b *board) addLine(coords []coord, on func(coord) bool) {
	id := len(b.lines)
	var line []int
	for i, c := range coords {
		if on(c) {
			line = append(line, i)
			b.ofCell[i] = append(b.ofCell[i], id)
		}
	}
	b.lines = append(b.lines, line)
}

// winningLines is the number of ley lines a player must claim to win.
func (b *board) winningLines() int {
	return (len(b.lines) + 1) / 2
}
