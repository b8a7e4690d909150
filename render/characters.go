package render

import (
	"image/color"

	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	bodyW   = 40.0
	bodyH   = 110.0
	shadowW = 50.0
	shadowH = 10.0
	fistW   = 26.0
	fistH   = 10.0
)

// DrawCharacters draws every character back to front as a placeholder
// figure with a floor shadow.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	camX := systems.CameraX(e)
	for _, p := range systems.Poses(e.World) {
		drawPose(screen, p, camX)
	}
}

func bodyColor(p systems.Pose) color.RGBA {
	if p.Flash {
		return cfg.White
	}
	base := cfg.Red
	if p.Player {
		base = cfg.Blue
	}
	switch p.State {
	case cfg.StateStun, cfg.StateKnockback:
		return lerpColor(base, cfg.White, 0.35)
	case cfg.StateDown:
		return lerpColor(base, cfg.Black, 0.4)
	}
	return base
}

func drawPose(screen *ebiten.Image, p systems.Pose, camX float64) {
	if !p.Visible {
		return
	}
	x := p.World.X - camX
	floorY := p.World.Y
	s := p.Scale

	sw, sh := shadowW*s, shadowH*s
	vector.DrawFilledRect(screen, float32(x-sw/2), float32(floorY-sh/2), float32(sw), float32(sh), cfg.Shadow, false)

	w, h := bodyW*s, bodyH*s
	if p.State == cfg.StateDown {
		w, h = h, w
	}
	top := floorY - p.Z - h
	c := bodyColor(p)
	vector.DrawFilledRect(screen, float32(x-w/2), float32(top), float32(w), float32(h), c, false)
	vector.StrokeRect(screen, float32(x-w/2), float32(top), float32(w), float32(h), 1, cfg.Black, false)

	if p.State != cfg.StateAttack {
		return
	}
	// the strike, longer on later clip frames
	reach := fistW * s * (1 + 0.25*float64(p.Frame))
	fy := top + h*0.3
	fx := x + w/2
	if !p.FacingRight {
		fx = x - w/2 - reach
	}
	vector.DrawFilledRect(screen, float32(fx), float32(fy), float32(reach), float32(fistH*s), cfg.Yellow, false)
}
