package systems

import (
	"fmt"

	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD tags each servant with its player number and prints the way back
// to the menu.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Hint.Get()

	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		body := f.Body()
		tag := fmt.Sprintf("P%d %s", f.Slot+1, f.Selection)
		drawCentered(screen, tag, face, body.X+body.W/2, body.Y-12, f.Class.Tint())
	})

	hint := "ESC: menu"
	b := text.BoundString(face, hint)
	text.Draw(screen, hint, face, 4, screen.Bounds().Dy()-b.Max.Y-4, cfg.Menu.HintColor)
}
