package render

import (
	"image/color"
	"math"

	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	bandStep      = 4
	cityBlockW    = 120
	cityParallax  = 0.3
	floorStripeW  = 160
	floorParallax = 1.0
)

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: 255}
}

func gradient(screen *ebiten.Image, y0, y1 float64, top, bottom color.RGBA) {
	w := float32(screen.Bounds().Dx())
	for y := y0; y < y1; y += bandStep {
		t := (y - y0) / (y1 - y0)
		vector.DrawFilledRect(screen, 0, float32(y), w, bandStep, lerpColor(top, bottom, t), false)
	}
}

// DrawStage paints the sky, a parallax skyline and the floor band.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	floor := cfg.Screen.FloorStartY
	h := float64(cfg.Screen.Height)
	gradient(screen, 0, floor, cfg.SkyTop, cfg.SkyBottom)
	gradient(screen, floor, h, cfg.FloorTop, cfg.FloorBottom)

	camX := systems.CameraX(e)
	width := float64(cfg.Screen.Width)

	off := math.Mod(camX*cityParallax, cityBlockW)
	for i := -1; float64(i)*cityBlockW < width+cityBlockW; i++ {
		x := float64(i)*cityBlockW - off
		// deterministic skyline heights from the block index
		idx := int(math.Floor((camX*cityParallax)/cityBlockW)) + i
		bh := 80 + float64(((idx*37)%5+5)%5)*30
		vector.DrawFilledRect(screen, float32(x+8), float32(floor-bh), cityBlockW-16, float32(bh), cfg.City, false)
	}

	stripe := math.Mod(camX*floorParallax, floorStripeW)
	for x := -stripe; x < width; x += floorStripeW {
		vector.StrokeLine(screen, float32(x), float32(floor), float32(x-60), float32(h), 1, cfg.FloorBottom, false)
	}
	vector.StrokeLine(screen, 0, float32(floor), float32(width), float32(floor), 2, cfg.Black, false)
}
