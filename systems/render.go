package systems

import (
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawArena fills the background and the obstacle rectangles.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Duel.BackgroundColor)

	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	for _, s := range components.Arena.Get(entry).Shapes() {
		vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), cfg.Duel.ArenaColor, false)
	}
}

// DrawFighters renders each servant's current frame at its draw target.
// Frames face right and are mirrored for a servant facing left.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		frame, target := f.DrawTarget()

		img := frameImage(f.Frames, frame)
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		if frame.Direction == fighter.Left {
			w := float64(img.Bounds().Dx())
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(w, 0)
		}
		drawOp.GeoM.Translate(target.X, target.Y)

		if f.Mirror {
			drawOp.ColorScale.Scale(0.55, 0.55, 0.7, 1)
		}
		screen.DrawImage(img, drawOp)
	})
}

// frameImage looks up a frame, tolerating a frame set that shrank after a
// roster reload.
func frameImage(frames map[fighter.FrameSetID][]*ebiten.Image, f fighter.Frame) *ebiten.Image {
	set := frames[f.Set]
	if len(set) == 0 {
		return nil
	}
	return set[f.Index%len(set)]
}
