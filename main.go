package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/sevren/tetris/game"
	"github.com/sevren/tetris/sprite"
	"github.com/sevren/tetris/tetromino"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 32
	// panelWidth is the width of the side panels, in cells. The score
	// lives in the left panel, the piece preview in the right one.
	panelWidth = 6
	// queueSize is the number of upcoming pieces shown in the preview
	queueSize = 3
	// tps is the fixed tick rate driving the game clock
	tps = 60
	// keyRepeatDelay is the number of ticks a movement key must be held
	// before it starts repeating
	keyRepeatDelay = 10
)

const tick = time.Second / tps

// App is the ebiten shell around the rules engine: it maps key presses
// to commands, feeds elapsed time into gravity, and renders the state
// the engine exposes.
type App struct {
	Game *game.Game
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
}

func NewApp() *App {
	return &App{Game: game.NewGame(nil)}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.Game.Handle(game.Restart)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.Game.Handle(game.HardDrop)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.Game.Handle(game.RotateCW)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.KeyPressDuration(ebiten.KeyLeft) > keyRepeatDelay {
		a.Game.Handle(game.MoveLeft)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.KeyPressDuration(ebiten.KeyRight) > keyRepeatDelay {
		a.Game.Handle(game.MoveRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.KeyPressDuration(ebiten.KeyDown) > keyRepeatDelay {
		a.Game.Handle(game.SoftDrop)
	}

	a.Game.Advance(tick)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.drawBoard(screen)
	if ghost, ok := a.Game.Ghost(); ok {
		a.drawPiece(screen, sprite.Ghost, ghost)
	}
	if active, ok := a.Game.ActivePiece(); ok {
		a.drawPiece(screen, sprite.Cell, active)
	}
	a.drawQueue(screen)
	a.drawScore(screen)
	a.drawGameOver(screen)
}

func (a *App) Layout(_, _ int) (screenWidth, screenHeight int) {
	b := a.Game.Board()
	a.ScreenWidth = (panelWidth + b.Width() + panelWidth) * cellSize
	a.ScreenHeight = b.Height() * cellSize
	return a.ScreenWidth, a.ScreenHeight
}

var gridTint = color.NRGBA{0x28, 0x28, 0x28, 0xff}

func (a *App) drawBoard(screen *ebiten.Image) {
	b := a.Game.Board()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			kind, occupied := b.Cell(col, row)
			if occupied {
				drawCell(screen, sprite.Cell, (panelWidth+col)*cellSize, row*cellSize, kind.Color())
			} else {
				drawCell(screen, sprite.Ghost, (panelWidth+col)*cellSize, row*cellSize, gridTint)
			}
		}
	}
}

func (a *App) drawPiece(screen, img *ebiten.Image, p game.Piece) {
	for _, c := range p.Cells() {
		if c.Row < 0 {
			continue
		}
		drawCell(screen, img, (panelWidth+c.Col)*cellSize, c.Row*cellSize, p.Kind.Color())
	}
}

func (a *App) drawQueue(screen *ebiten.Image) {
	for i, kind := range a.Game.Upcoming(queueSize) {
		minCol, minRow, w, h := tetromino.Box(kind, 0)
		xoff := (panelWidth+a.Game.Board().Width()+panelWidth/2)*cellSize - w*cellSize/2
		yoff := 2*cellSize + i*(3*cellSize) - h*cellSize/2
		for _, c := range tetromino.Offsets(kind, 0) {
			drawCell(screen, sprite.Cell, xoff+(c.Col-minCol)*cellSize, yoff+(c.Row-minRow)*cellSize, kind.Color())
		}
	}
}

func (a *App) drawScore(screen *ebiten.Image) {
	drawText(screen, sprite.Regular, "Score", 24, 12, a.ScreenHeight-84, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", a.Game.Score()), 24, 96, a.ScreenHeight-84, color.White)
	drawText(screen, sprite.Regular, "Level", 24, 12, a.ScreenHeight-48, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", a.Game.Level()+1), 24, 96, a.ScreenHeight-48, color.White)
	drawText(screen, sprite.Regular, "Lines", 24, 12, a.ScreenHeight-12, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", a.Game.Lines()), 24, 96, a.ScreenHeight-12, color.White)
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	if a.Game.Phase() != game.GameOver {
		return
	}
	x := (panelWidth + 1) * cellSize
	y := a.ScreenHeight / 2
	drawText(screen, sprite.Regular, "GAME OVER", 36, x, y-36, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("Final score: %d", a.Game.Score()), 24, x, y+6, color.White)
	drawText(screen, sprite.Regular, "Press R to restart", 24, x, y+42, color.White)
}

func drawCell(screen, img *ebiten.Image, x, y int, tint color.NRGBA) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint)
	op.GeoM.Scale(float64(cellSize)/float64(img.Bounds().Dx()), float64(cellSize)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

func main() {
	log.SetFlags(0)
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(704, 640)
	if err := ebiten.RunGame(NewApp()); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
