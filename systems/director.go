package systems

import (
	"log"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFunc creates one enemy at pos that keeps offset from the player.
type SpawnFunc func(e *ecs.ECS, pos, offset gamemath.Vec2) *donburi.Entry

// Director paces the encounter waves and locks the player inside the arena
// while one is running.
type Director struct {
	spawn SpawnFunc
}

func NewDirector(spawn SpawnFunc) *Director {
	return &Director{spawn: spawn}
}

func (d *Director) Update(e *ecs.ECS) {
	dir := directorOf(e.World)
	cam := cameraOf(e.World)
	player, ok := PlayerEntry(e.World)
	if dir == nil || cam == nil || !ok {
		return
	}
	tr := components.Transform.Get(player)
	camX := cam.Position.X

	if !dir.Active {
		if tr.Position.X < camX+cfg.Wave.FreeRoamMargin {
			tr.Position.X = camX + cfg.Wave.FreeRoamMargin
		}
		if tr.Position.X <= dir.NextTriggerX {
			return
		}
		d.startWave(e.World, dir)
	}

	tr.Position.X = gamemath.Clamp(tr.Position.X,
		camX+cfg.Wave.ArenaMargin, camX+float64(cfg.Screen.Width)-cfg.Wave.ArenaMargin)

	if dir.ToSpawn > 0 {
		dir.SpawnTimer++
		if dir.SpawnTimer >= cfg.Wave.SpawnInterval || len(Enemies(e.World)) == 0 {
			d.spawnOne(e, camX)
			dir.ToSpawn--
			dir.SpawnTimer = 0
		}
	}

	if dir.ToSpawn <= 0 && len(Enemies(e.World)) == 0 {
		dir.NextTriggerX = tr.Position.X + pick(e.World, cfg.Wave.NextDistances)
		dir.Active = false
		log.Printf("wave %d cleared, next at x=%.0f", dir.Wave, dir.NextTriggerX)
	}
}

func (d *Director) startWave(w donburi.World, dir *components.DirectorData) {
	span := cfg.Wave.MaxEnemies - cfg.Wave.MinEnemies + 1
	dir.ToSpawn = cfg.Wave.MinEnemies + intn(w, span)
	dir.SpawnTimer = 0
	dir.Active = true
	dir.Wave++
	log.Printf("wave %d started with %d enemies", dir.Wave, dir.ToSpawn)
}

func (d *Director) spawnOne(e *ecs.ECS, camX float64) {
	if d.spawn == nil {
		return
	}
	x := camX + cfg.Wave.SpawnRightX
	if intn(e.World, 2) == 0 {
		x = camX + cfg.Wave.SpawnLeftX
	}
	y := float64(cfg.Wave.SpawnMinY + intn(e.World, cfg.Wave.SpawnMaxY-cfg.Wave.SpawnMinY+1))
	f := cfg.Wave.Formation[intn(e.World, len(cfg.Wave.Formation))]
	d.spawn(e, gamemath.V(x, y), gamemath.V(f[0], f[1]))
}

// ResetDirector returns the director to its initial state.
func ResetDirector(w donburi.World) {
	if dir := directorOf(w); dir != nil {
		*dir = components.DirectorData{NextTriggerX: cfg.Wave.FirstTriggerX}
	}
}

func intn(w donburi.World, n int) int {
	if rng := rngOf(w); rng != nil && n > 0 {
		return rng.Intn(n)
	}
	return 0
}

func pick(w donburi.World, xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[intn(w, len(xs))]
}
