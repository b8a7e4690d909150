package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 260
	hudBarHeight = 16
	hudMargin    = 16
)

var hudDrawOp = &ebiten.DrawImageOptions{}

func drawBar(screen *ebiten.Image, x, y float32, ratio float64, fill color.Color) {
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, hudBarWidth*float32(ratio), hudBarHeight, fill, false)
	vector.StrokeRect(screen, x, y, hudBarWidth, hudBarHeight, 1, cfg.White, false)
}

// DrawHUD renders the health bars, the combo counter and the GO indicator.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := systems.PlayerEntry(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	drawBar(screen, hudMargin, hudMargin, hp.Ratio(), cfg.Green)
	text.Draw(screen, "PLAYER", fonts.Small.Get(), hudMargin, hudMargin+hudBarHeight+14, cfg.White)

	hud := systems.HUDState(e.World)
	if hud == nil {
		return
	}

	if hud.HasTarget && e.World.Valid(hud.Target) {
		target := e.World.Entry(hud.Target)
		x := float32(cfg.Screen.Width) - hudMargin - hudBarWidth
		drawBar(screen, x, hudMargin, components.Health.Get(target).Ratio(), cfg.Red)
		text.Draw(screen, "THUG", fonts.Small.Get(), int(x), hudMargin+hudBarHeight+14, cfg.White)
	}

	if dir := systems.DirectorState(e.World); dir != nil && dir.Wave > 0 {
		drawCentered(screen, fmt.Sprintf("WAVE %d", dir.Wave), fonts.Small.Get(), float64(cfg.Screen.Width)/2, hudMargin+12, 1, 1, cfg.White)
	}

	if hud.ComboTimer > 0 && hud.ComboAlpha > 0 {
		x := hud.ComboPos.X - systems.CameraX(e)
		drawCentered(screen, fmt.Sprintf("%d HITS", hud.ComboCount), fonts.Bold.Get(), x, hud.ComboPos.Y, hud.ComboScale, hud.ComboAlpha, cfg.Yellow)
	}

	if hud.GoVisible {
		drawCentered(screen, "GO!", fonts.Title.Get(), float64(cfg.Screen.Width)-140, 140, hud.GoScale, 1, cfg.Yellow)
	}
}

// drawCentered draws s centred on (x, y) scaled around its centre.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y, scale, alpha float64, c color.Color) {
	b := text.BoundString(face, s)
	w, h := float64(b.Dx()), float64(b.Dy())
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-w/2, h/2)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(x, y)
	hudDrawOp.ColorScale.ScaleWithColor(c)
	hudDrawOp.ColorScale.ScaleAlpha(float32(alpha))
	text.DrawWithOptions(screen, s, face, hudDrawOp)
}

// DrawOverlay dims the screen while paused or after game over.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	s := systems.Session(e)
	if s == nil || !(s.Paused || s.GameOver) {
		return
	}
	w, h := float32(cfg.Screen.Width), float32(cfg.Screen.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.Overlay, false)

	title, hint := "PAUSED", "R to restart   ESC to resume"
	if s.GameOver {
		title, hint = "GAME OVER", "R to restart"
	}
	cx, cy := float64(w)/2, float64(h)/2
	drawCentered(screen, title, fonts.Title.Get(), cx, cy-20, 1, 1, cfg.White)
	drawCentered(screen, hint, fonts.Regular.Get(), cx, cy+40, 1, 1, cfg.White)
}
