package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevren/tetris/tetromino"
)

func newTestGame(seed int64) *Game {
	return NewGame(rand.New(rand.NewSource(seed)))
}

func TestNewGameSpawnsFirstPiece(t *testing.T) {
	g := newTestGame(1)
	assert.Equal(t, Falling, g.Phase())

	p, ok := g.ActivePiece()
	require.True(t, ok)
	assert.True(t, Fits(g.Board(), p))
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
}

func TestSoftDropToBottom(t *testing.T) {
	g := newTestGame(1)
	g.active = Spawn(g.board, tetromino.I) // horizontal, cells on row 0

	for i := 0; i < 19; i++ {
		g.Handle(SoftDrop)
		require.True(t, boardEmpty(g.board), "piece must not lock prematurely (drop %d)", i)
	}

	// Nineteen drops later the piece rests on the bottom row, still
	// active.
	p, ok := g.ActivePiece()
	require.True(t, ok)
	for _, c := range p.Cells() {
		assert.Equal(t, 19, c.Row)
	}
	assert.Empty(t, FullRows(g.board))

	// The twentieth drop is rejected and triggers the lock.
	g.Handle(SoftDrop)
	for col := 3; col <= 6; col++ {
		kind, occupied := g.board.Cell(col, 19)
		assert.True(t, occupied, "col %d", col)
		assert.Equal(t, tetromino.I, kind, "col %d", col)
	}

	// And the next piece is already falling from the top.
	next, ok := g.ActivePiece()
	require.True(t, ok)
	assert.Equal(t, Falling, g.Phase())
	assert.Equal(t, 0, topRow(next))
}

func boardEmpty(b *Board) bool {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.IsOccupied(col, row) {
				return false
			}
		}
	}
	return true
}

// topRow is the topmost row the piece covers.
func topRow(p Piece) int {
	top := p.Cells()[0].Row
	for _, c := range p.Cells() {
		top = min(top, c.Row)
	}
	return top
}

func TestHardDropLocksImmediately(t *testing.T) {
	g := newTestGame(2)
	g.active = Spawn(g.board, tetromino.O)
	before := g.active

	g.Handle(HardDrop)

	// The piece locked at its lowest valid position in one step. The
	// board has the locked cells now, so compute that position against
	// an empty one.
	want := before
	want.Row = DropRow(newBoard(DefaultWidth, DefaultHeight), before)
	for _, c := range want.Cells() {
		assert.True(t, g.board.IsOccupied(c.Col, c.Row), "cell %v", c)
	}
	assert.Equal(t, Falling, g.Phase())
}

func TestMoveRejectedAtWall(t *testing.T) {
	g := newTestGame(3)
	g.active = Piece{Kind: tetromino.O, Col: 0, Row: 5}

	g.Handle(MoveLeft)
	assert.Equal(t, 0, g.active.Col, "move into the wall is rejected")

	g.Handle(MoveRight)
	assert.Equal(t, 1, g.active.Col)
}

func TestRotationRejectedWithoutKicks(t *testing.T) {
	g := newTestGame(4)
	// Vertical I hugging the left wall: rotating would poke through it.
	g.active = Piece{Kind: tetromino.I, Rotation: 1, Col: -1, Row: 5}
	require.True(t, Fits(g.board, g.active))

	g.Handle(RotateCW)
	assert.Equal(t, 1, g.active.Rotation, "blocked rotation is rejected outright")

	// The same rotation succeeds in open space.
	g.active.Col = 3
	g.Handle(RotateCW)
	assert.Equal(t, 2, g.active.Rotation)
}

func TestLockClearsCompletedRow(t *testing.T) {
	g := newTestGame(5)
	fillRow(g.board, 19, 0)

	// A vertical I dropped into the gap completes the bottom row.
	g.active = Piece{Kind: tetromino.I, Rotation: 1, Col: -1, Row: 0}
	require.True(t, Fits(g.board, g.active))
	g.Handle(HardDrop)

	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 40, g.Score())

	// The cleared row dropped out; the rest of the I shifted down one.
	assert.Equal(t, []bool{true, false, false, false, false, false, false, false, false, false}, rowPattern(g.board, 19))
	assert.True(t, g.board.IsOccupied(0, 17))
	assert.True(t, g.board.IsOccupied(0, 18))
	assert.False(t, g.board.IsOccupied(0, 16))
	assert.Equal(t, []bool{false, false, false, false, false, false, false, false, false, false}, rowPattern(g.board, 0))
}

func TestToppedOutSpawnEndsGame(t *testing.T) {
	g := newTestGame(6)
	fillRow(g.board, 0)
	fillRow(g.board, 1)

	g.spawn()
	assert.Equal(t, GameOver, g.Phase())

	_, ok := g.ActivePiece()
	assert.False(t, ok)

	// Everything but Restart is ignored now.
	board := g.board
	for _, cmd := range []Command{MoveLeft, MoveRight, SoftDrop, RotateCW, HardDrop} {
		g.Handle(cmd)
		assert.Equal(t, GameOver, g.Phase(), "command %d", cmd)
		assert.Same(t, board, g.board, "command %d", cmd)
	}
}

func TestRestartReinitializesSession(t *testing.T) {
	g := newTestGame(7)
	fillRow(g.board, 19, 0)
	g.active = Piece{Kind: tetromino.I, Rotation: 1, Col: -1, Row: 0}
	g.Handle(HardDrop)
	require.Equal(t, 1, g.Lines())

	g.Handle(Restart)

	assert.Equal(t, Falling, g.Phase())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 0, g.Level())
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			assert.False(t, g.board.IsOccupied(col, row), "cell (%d, %d)", col, row)
		}
	}
	_, ok := g.ActivePiece()
	assert.True(t, ok)
}

func TestAdvanceGravity(t *testing.T) {
	g := newTestGame(8)
	start := g.active

	g.Advance(g.progress.FallInterval() - time.Millisecond)
	assert.Equal(t, start.Row, g.active.Row, "no fall before the interval elapses")

	g.Advance(time.Millisecond)
	assert.Equal(t, start.Row+1, g.active.Row, "one fall once the interval elapses")

	// A large step applies several falls at once.
	g.Advance(3 * g.progress.FallInterval())
	assert.Equal(t, start.Row+4, g.active.Row)
}

func TestGravityLocksGroundedPiece(t *testing.T) {
	g := newTestGame(9)
	g.active = Spawn(g.board, tetromino.O)
	g.active.Row = DropRow(g.board, g.active)
	grounded := g.active

	g.Advance(g.progress.FallInterval())

	for _, c := range grounded.Cells() {
		assert.True(t, g.board.IsOccupied(c.Col, c.Row), "cell %v", c)
	}
	assert.Equal(t, Falling, g.Phase(), "next piece spawned")
}

func TestUpcomingPreview(t *testing.T) {
	g := newTestGame(10)

	preview := g.Upcoming(3)
	require.Len(t, preview, 3)

	// The preview is stable and matches what actually spawns next.
	assert.Equal(t, preview, g.Upcoming(3))
	g.Handle(HardDrop)
	p, ok := g.ActivePiece()
	require.True(t, ok)
	assert.Equal(t, preview[0], p.Kind)
}

// TestSessionInvariants plays a scripted session and checks the global
// invariants after every step: counters never decrease, the active
// piece never overlaps a locked cell, and every locked cell is in
// bounds by construction of the grid.
func TestSessionInvariants(t *testing.T) {
	g := newTestGame(11)
	rng := rand.New(rand.NewSource(12))
	commands := []Command{MoveLeft, MoveRight, SoftDrop, RotateCW, HardDrop}

	prevScore, prevLines, prevLevel := 0, 0, 0
	for step := 0; step < 2000 && g.Phase() != GameOver; step++ {
		if rng.Intn(4) == 0 {
			g.Handle(commands[rng.Intn(len(commands))])
		}
		g.Advance(50 * time.Millisecond)

		assert.GreaterOrEqual(t, g.Score(), prevScore, "step %d", step)
		assert.GreaterOrEqual(t, g.Lines(), prevLines, "step %d", step)
		assert.GreaterOrEqual(t, g.Level(), prevLevel, "step %d", step)
		prevScore, prevLines, prevLevel = g.Score(), g.Lines(), g.Level()

		if p, ok := g.ActivePiece(); ok {
			assert.True(t, Fits(g.Board(), p), "step %d: active piece overlaps board", step)
		}
	}
}
