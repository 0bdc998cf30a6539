package game

import (
	"math/rand"
	"time"

	"github.com/sevren/tetris/tetromino"
)

// Default board dimensions, not counting the open rows above the field.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Phase is the state machine's current state. Lock, clear and spawn
// resolve synchronously within a single command or gravity step; the
// phase observed between updates is Falling or GameOver.
type Phase int

const (
	Spawning Phase = iota
	Falling
	Locking
	Clearing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Spawning:
		return "spawning"
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case Clearing:
		return "clearing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command is a discrete player input, one per key press.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	RotateCW
	HardDrop
	Restart
)

// Game is one playfield session: the board, the active piece, the
// upcoming-piece queue and the score counters, advanced by commands
// and elapsed time. It is not safe for concurrent use; the caller
// drives it from a single loop.
type Game struct {
	rng       *rand.Rand
	board     *Board
	queue     *Queue
	progress  Progress
	active    Piece
	phase     Phase
	sinceFall time.Duration
}

// NewGame starts a session on a default-sized board with the first
// piece already spawned. Pieces are drawn from rng; a nil rng gets a
// time-seeded source, a fixed seed reproduces the same piece sequence.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{rng: rng}
	g.reset()
	return g
}

// reset reinitializes the whole session: fresh board, fresh queue,
// zeroed counters, first piece spawned.
func (g *Game) reset() {
	g.board = newBoard(DefaultWidth, DefaultHeight)
	g.queue = NewQueue(g.rng)
	g.progress = Progress{}
	g.sinceFall = 0
	g.spawn()
}

// Handle applies a single command. Illegal moves are rejected with no
// visible effect; commands that do not apply to the current phase are
// no-ops. Restart works in any phase and is the only command accepted
// after a game over.
func (g *Game) Handle(cmd Command) {
	if cmd == Restart {
		g.reset()
		return
	}
	if g.phase != Falling {
		return
	}
	switch cmd {
	case MoveLeft:
		g.tryMove(-1, 0)
	case MoveRight:
		g.tryMove(1, 0)
	case RotateCW:
		// No wall kicks: a rotation that would overlap or leave the
		// board simply fails.
		if p := g.active.rotated(1); Fits(g.board, p) {
			g.active = p
		}
	case SoftDrop:
		if !g.tryMove(0, 1) {
			g.lock()
			return
		}
		g.sinceFall = 0
	case HardDrop:
		g.active.Row = DropRow(g.board, g.active)
		g.lock()
	}
}

// Advance feeds elapsed time into gravity. Whenever the accumulated
// time reaches the current fall interval the piece falls one row; a
// piece that can no longer fall locks.
func (g *Game) Advance(dt time.Duration) {
	if g.phase != Falling {
		return
	}
	g.sinceFall += dt
	for g.sinceFall >= g.progress.FallInterval() {
		g.sinceFall -= g.progress.FallInterval()
		if !g.tryMove(0, 1) {
			g.lock()
			return
		}
	}
}

func (g *Game) tryMove(dcol, drow int) bool {
	p := g.active.moved(dcol, drow)
	if !Fits(g.board, p) {
		return false
	}
	g.active = p
	return true
}

// lock merges the active piece into the board, clears any full rows,
// scores the clear and spawns the next piece.
func (g *Game) lock() {
	g.phase = Locking
	g.board.Merge(g.active)
	g.phase = Clearing
	g.progress.ApplyClears(ClearFull(g.board))
	g.spawn()
}

// spawn draws the next kind and places it at the spawn anchor. If that
// placement is already blocked the board has topped out and the game
// is over.
func (g *Game) spawn() {
	g.phase = Spawning
	g.active = Spawn(g.board, g.queue.Next())
	if !Fits(g.board, g.active) {
		g.phase = GameOver
		return
	}
	g.phase = Falling
	g.sinceFall = 0
}

// Board exposes the locked-cell grid for rendering.
func (g *Game) Board() *Board { return g.board }

// ActivePiece returns the piece currently falling. After a game over
// there is no active piece.
func (g *Game) ActivePiece() (Piece, bool) {
	if g.phase == GameOver {
		return Piece{}, false
	}
	return g.active, true
}

// Ghost returns the active piece stamped at its hard-drop position.
func (g *Game) Ghost() (Piece, bool) {
	p, ok := g.ActivePiece()
	if !ok {
		return Piece{}, false
	}
	p.Row = DropRow(g.board, p)
	return p, true
}

// Upcoming returns the next n kinds for the preview panel.
func (g *Game) Upcoming(n int) []tetromino.Kind {
	kinds, err := g.queue.Peek(n)
	if err != nil {
		// The queue refills before answering, so this cannot happen.
		return nil
	}
	return kinds
}

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Score() int   { return g.progress.Score }
func (g *Game) Level() int   { return g.progress.Level }
func (g *Game) Lines() int   { return g.progress.Lines }
