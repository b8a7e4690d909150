package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateHUD(e *ecs.ECS) {
	hud := hudOf(e.World)
	if hud == nil {
		return
	}
	hud.StepCombo()

	inWave := false
	if dir := directorOf(e.World); dir != nil {
		inWave = dir.Active
	}
	if hud.StepGo(NowMs(e.World), cfg.Display.GoBlinkMs, !inWave, cfg.Display.ComboPopTicks) {
		PlaySFX(e.World, cfg.SoundGoBell)
	}

	player, ok := PlayerEntry(e.World)
	if !ok {
		hud.HasTarget = false
		return
	}
	updateTarget(e, hud, player)

	if components.Death.Get(player).Finished {
		if s := sessionOf(e.World); s != nil {
			s.GameOver = true
		}
	}
}

// updateTarget picks the closest living enemy in range for the enemy health
// bar.
func updateTarget(e *ecs.ECS, hud *components.HUDData, player *donburi.Entry) {
	self := components.Transform.Get(player).Position
	best := cfg.Display.TargetRange
	hud.HasTarget = false
	for _, o := range Enemies(e.World) {
		if components.Death.Get(o).Dead {
			continue
		}
		if d := self.Distance(components.Transform.Get(o).Position); d < best {
			best = d
			hud.Target = o.Entity()
			hud.HasTarget = true
		}
	}
}
