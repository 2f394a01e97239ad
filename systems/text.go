package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s with its bounding box centred on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// drawMiddleLeft draws s with its left edge at x and its box centred on cy.
func drawMiddleLeft(dst *ebiten.Image, s string, face font.Face, x, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, int(x)-b.Min.X, y, clr)
}
