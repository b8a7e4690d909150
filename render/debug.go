package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Debug toggles the broadphase overlay.
var Debug bool

// DrawDebug outlines the character bodies and prints each state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !Debug {
		return
	}
	space := systems.BodySpace(e.World)
	if space == nil {
		return
	}
	camX := systems.CameraX(e)
	width := float64(screen.Bounds().Dx())

	for _, obj := range space.Objects() {
		x := obj.X - systems.BodyMargin - camX
		if x+obj.W < 0 || x > width {
			continue
		}
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255}
		}
		vector.StrokeRect(screen, float32(x), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	for _, en := range systems.Roster(e.World) {
		st := components.State.Get(en)
		pos := components.Transform.Get(en).Position
		label := fmt.Sprintf("%s %d", st.Current, st.Timer)
		text.Draw(screen, label, fonts.Small.Get(), int(pos.X-camX)-20, int(pos.Y)+16, color.White)
	}
}
