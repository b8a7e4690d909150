package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/streetbrawl/assets"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/input"
	"github.com/automoto/streetbrawl/render"
	"github.com/automoto/streetbrawl/sfx"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// BrawlScene is the side-scrolling fight.
type BrawlScene struct {
	ecs     *ecs.ECS
	options cfg.Options
	once    sync.Once
}

func NewBrawlScene(options cfg.Options) *BrawlScene {
	return &BrawlScene{options: options}
}

func (bs *BrawlScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BrawlScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BrawlScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())
	keyboard := input.NewKeyboard()
	brawl := factory.NewBrawl(world, bs.options.Seed, assets.DefaultRepository(), &systems.HumanInput{Signal: keyboard.Signal})

	// Input runs even when paused so the pause key can resume
	world.AddSystem(keyboard.Update)
	world.AddSystem(brawl.Pipeline.Step)

	if sink, err := sfx.NewSink(bs.options); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
		world.AddSystem(func(e *ecs.ECS) { systems.DrainSFX(e.World) })
	} else {
		world.AddSystem(sink.Update)
	}

	render.Debug = bs.options.Debug

	world.AddRenderer(cfg.Default, render.DrawStage)
	world.AddRenderer(cfg.Default, render.DrawCharacters)
	world.AddRenderer(cfg.Default, render.DrawDebug)
	world.AddRenderer(cfg.HUD, render.DrawHUD)
	world.AddRenderer(cfg.HUD, render.DrawOverlay)

	bs.ecs = world
}
