package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(options config.Options) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewBrawlScene(options),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	optionsPath := flag.String("options", config.DefaultOptionsFile, "path to the options file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "draw collision bodies")
	flag.Parse()

	options, err := config.LoadOptions(*optionsPath)
	if err != nil {
		log.Printf("Warning: using default options: %v", err)
	}
	if *seed != 0 {
		options.Seed = *seed
	}
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	options.Debug = options.Debug || *debug

	ebiten.SetWindowTitle("Street Brawl")
	ebiten.SetWindowSize(int(float64(config.C.Width)*options.Scale), int(float64(config.C.Height)*options.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Screen.TPS)

	game, err := NewGame(options)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
