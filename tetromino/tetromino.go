// Package tetromino is the static catalog of the seven piece kinds:
// their colors and the occupied cell offsets of each rotation state.
package tetromino

import (
	"fmt"
	"image/color"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
	kindCount
)

// Kinds returns all seven kinds in catalog order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return [...]string{"I", "J", "L", "O", "S", "T", "Z"}[k]
}

// Color returns the kind's fixed cell color.
func (k Kind) Color() color.NRGBA {
	mustBeValid(k)
	return [...]color.NRGBA{
		I: {0x00, 0xff, 0xff, 0xff},
		J: {0x00, 0x00, 0xff, 0xff},
		L: {0xff, 0xa5, 0x00, 0xff},
		O: {0xff, 0xff, 0x00, 0xff},
		S: {0x00, 0xff, 0x00, 0xff},
		T: {0x80, 0x00, 0x80, 0xff},
		Z: {0xff, 0x00, 0x00, 0xff},
	}[k]
}

// Point is a cell offset relative to a piece's anchor. Col grows to the
// right, Row grows downwards.
type Point struct {
	Col, Row int
}

// shape is the rotation-0 cell mask of a kind, laid out row-major in a
// square grid of the given width.
type shape struct {
	mask  []int
	width int
}

var shapes = [kindCount]shape{
	I: {
		width: 4,
		mask: []int{
			0, 0, 0, 0,
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
		},
	},
	J: {
		width: 3,
		mask: []int{
			1, 0, 0,
			1, 1, 1,
			0, 0, 0,
		},
	},
	L: {
		width: 3,
		mask: []int{
			0, 0, 1,
			1, 1, 1,
			0, 0, 0,
		},
	},
	O: {
		width: 2,
		mask: []int{
			1, 1,
			1, 1,
		},
	},
	S: {
		width: 3,
		mask: []int{
			0, 1, 1,
			1, 1, 0,
			0, 0, 0,
		},
	},
	T: {
		width: 3,
		mask: []int{
			0, 1, 0,
			1, 1, 1,
			0, 0, 0,
		},
	},
	Z: {
		width: 3,
		mask: []int{
			1, 1, 0,
			0, 1, 1,
			0, 0, 0,
		},
	},
}

// offsets holds the occupied cell offsets of every kind at every
// rotation, precomputed from the rotation-0 masks at init.
var offsets [kindCount][4][]Point

func init() {
	for k := Kind(0); k < kindCount; k++ {
		mask, width := shapes[k].mask, shapes[k].width
		for r := 0; r < 4; r++ {
			offsets[k][r] = maskOffsets(mask, width)
			mask = rotateMask(mask, width)
		}
	}
}

// rotateMask rotates a square row-major mask a quarter turn clockwise.
// The O mask is too small to rotate meaningfully and is returned as is.
func rotateMask(mask []int, width int) []int {
	if width < 3 {
		return mask
	}
	out := make([]int, len(mask))
	for i, v := range mask {
		col, row := i%width, i/width
		out[col*width+(width-1-row)] = v
	}
	return out
}

func maskOffsets(mask []int, width int) []Point {
	var pts []Point
	for i, v := range mask {
		if v == 0 {
			continue
		}
		pts = append(pts, Point{Col: i % width, Row: i / width})
	}
	return pts
}

// Offsets returns the occupied cell offsets of kind k at the given
// rotation. Rotation wraps modulo 4, so any index is accepted.
func Offsets(k Kind, rotation int) []Point {
	mustBeValid(k)
	return offsets[k][normalize(rotation)]
}

// GridWidth returns the width of k's rotation grid. Spawn positions are
// centered using this rather than the trimmed shape width, so that a
// piece spawns at the same column at every rotation.
func GridWidth(k Kind) int {
	mustBeValid(k)
	return shapes[k].width
}

// Box returns the tight bounding box of kind k at the given rotation:
// the top-left offset within the rotation grid and the box dimensions.
// Used to center pieces in preview panels.
func Box(k Kind, rotation int) (minCol, minRow, width, height int) {
	pts := Offsets(k, rotation)
	minCol, minRow = pts[0].Col, pts[0].Row
	maxCol, maxRow := minCol, minRow
	for _, p := range pts[1:] {
		minCol = min(minCol, p.Col)
		minRow = min(minRow, p.Row)
		maxCol = max(maxCol, p.Col)
		maxRow = max(maxRow, p.Row)
	}
	return minCol, minRow, maxCol - minCol + 1, maxRow - minRow + 1
}

func normalize(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

func mustBeValid(k Kind) {
	if k < 0 || k >= kindCount {
		panic(fmt.Sprintf("tetromino: invalid kind %d", int(k)))
	}
}
