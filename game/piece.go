package game

import "github.com/sevren/tetris/tetromino"

// Piece is the active piece: a kind at a rotation, anchored at a board
// position. The anchor is the top-left corner of the kind's rotation
// grid; it may sit above or outside the visible field as long as every
// occupied cell is legal.
type Piece struct {
	Kind     tetromino.Kind
	Rotation int
	Col, Row int
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() []tetromino.Point {
	offs := tetromino.Offsets(p.Kind, p.Rotation)
	cells := make([]tetromino.Point, len(offs))
	for i, o := range offs {
		cells[i] = tetromino.Point{Col: p.Col + o.Col, Row: p.Row + o.Row}
	}
	return cells
}

func (p Piece) moved(dcol, drow int) Piece {
	p.Col += dcol
	p.Row += drow
	return p
}

func (p Piece) rotated(by int) Piece {
	p.Rotation = (p.Rotation + by + 4) % 4
	return p
}

// Fits reports whether the placement is valid: every occupied cell of
// the piece is inside the board (or the open rows above it) and does
// not coincide with a locked cell.
func Fits(b *Board, p Piece) bool {
	for _, c := range p.Cells() {
		if b.IsOccupied(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// DropRow returns the lowest anchor row at which p still fits, keeping
// its column and rotation. This is where a hard drop lands and where
// the ghost outline is drawn.
func DropRow(b *Board, p Piece) int {
	for Fits(b, p.moved(0, 1)) {
		p.Row++
	}
	return p.Row
}

// Spawn places a fresh piece of the given kind at rotation 0,
// horizontally centered, with its topmost occupied cell on row 0.
func Spawn(b *Board, k tetromino.Kind) Piece {
	_, minRow, _, _ := tetromino.Box(k, 0)
	return Piece{
		Kind: k,
		Col:  (b.Width() - tetromino.GridWidth(k)) / 2,
		Row:  -minRow,
	}
}
