// Package game implements the rules of the falling-block playfield: the
// board grid, piece movement and collision, line clearing, scoring and
// the session state machine. It owns no timing or rendering; a front
// end feeds it commands and elapsed time and reads the state back.
package game

import (
	"fmt"

	"github.com/sevren/tetris/tetromino"
)

// Board is the grid of locked cells. The active piece is never part of
// the board; it is merged in only when it locks.
type Board struct {
	width, height int
	cells         []boardCell
}

type boardCell struct {
	kind     tetromino.Kind
	occupied bool
}

// NewBoard returns an empty board. Dimensions must be positive.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("game: invalid board dimensions %dx%d", width, height)
	}
	return newBoard(width, height), nil
}

func newBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]boardCell, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// IsInside reports whether (col, row) is a visible board cell.
func (b *Board) IsInside(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// IsOccupied reports whether (col, row) collides with a locked cell.
// Everything outside the board counts as occupied, except the hidden
// rows above row 0, which are open so pieces can spawn and rotate
// partially above the visible field.
func (b *Board) IsOccupied(col, row int) bool {
	if col < 0 || col >= b.width || row >= b.height {
		return true
	}
	if row < 0 {
		return false
	}
	return b.cells[row*b.width+col].occupied
}

// Cell returns the kind locked at (col, row), if any.
func (b *Board) Cell(col, row int) (tetromino.Kind, bool) {
	if !b.IsInside(col, row) {
		return 0, false
	}
	c := b.cells[row*b.width+col]
	return c.kind, c.occupied
}

// Merge locks the piece's cells into the grid. Cells in the hidden rows
// above the field are discarded. The caller must have validated the
// placement with Fits; merging over an occupied cell is a bug.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		if c.Row < 0 {
			continue
		}
		b.cells[c.Row*b.width+c.Col] = boardCell{kind: p.Kind, occupied: true}
	}
}

// ClearRows removes the given rows and shifts everything above them
// down, padding the top with empty rows. The grid is rebuilt in a
// single pass, so the order of the indices does not matter.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make(map[int]bool, len(rows))
	for _, row := range rows {
		cleared[row] = true
	}
	next := make([]boardCell, len(b.cells))
	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		copy(next[dst*b.width:(dst+1)*b.width], b.cells[src*b.width:(src+1)*b.width])
		dst--
	}
	b.cells = next
}
