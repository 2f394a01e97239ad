package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines obstacles, bodies and attack shapes when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowShapes {
		return
	}

	if entry, ok := components.Arena.First(ecs.World); ok {
		for _, s := range components.Arena.Get(entry).Shapes() {
			strokeShape(screen, s, color.RGBA{100, 100, 100, 255})
		}
	}

	y := 14
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		strokeShape(screen, f.AttackShape(fighter.Left), cfg.Debug.AttackLeft)
		strokeShape(screen, f.AttackShape(fighter.Right), cfg.Debug.AttackRight)
		strokeShape(screen, f.Body(), cfg.Debug.BodyColor)

		line := fmt.Sprintf("P%d %s %v v=%.1f falling=%t", f.Slot+1, f.Selection, f.Frame(), f.Physics.VerticalVelocity, f.Physics.Falling)
		text.Draw(screen, line, fonts.Debug.Get(), 4, y, cfg.White)
		y += 14
	})
}

func strokeShape(screen *ebiten.Image, s fighter.Shape, c color.Color) {
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 1, c, false)
}
