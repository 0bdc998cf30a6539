// Package sprite holds the front end's shared drawing resources: the
// block sprites and the UI font. Sprites are built at startup and
// tinted per piece kind when drawn.
package sprite

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is a solid block, Ghost an outline of the same size. Both are
// white so they can be tinted with any kind's color.
var Cell, Ghost *ebiten.Image

const (
	texSize     = 16
	borderWidth = 1
)

// Load builds the sprites and parses the UI font. Must be called once
// before the game starts drawing.
func Load() error {
	Cell = buildCell()
	Ghost = buildGhost()
	return loadFont()
}

func buildCell() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	img.Fill(gray(0xb4))
	inner := img.SubImage(insetRect(borderWidth)).(*ebiten.Image)
	inner.Fill(gray(0xff))
	return img
}

func buildGhost() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	img.Fill(gray(0xff))
	inner := img.SubImage(insetRect(borderWidth)).(*ebiten.Image)
	inner.Clear()
	return img
}

func insetRect(by int) image.Rectangle {
	return image.Rect(by, by, texSize-by, texSize-by)
}

func gray(v uint8) color.Color {
	return color.NRGBA{v, v, v, 0xff}
}
