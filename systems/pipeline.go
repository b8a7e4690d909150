package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// Pipeline runs the simulation systems in their fixed tick order.
type Pipeline struct {
	Director *Director
	systems  []func(*ecs.ECS)
}

func NewPipeline(spawn SpawnFunc) *Pipeline {
	p := &Pipeline{Director: NewDirector(spawn)}
	p.systems = []func(*ecs.ECS){
		advanceClock,
		p.Director.Update,
		UpdateCharacters,
		UpdateHits,
		UpdateSeparation,
		UpdateCamera,
		UpdateHUD,
		PruneEnemies,
	}
	return p
}

// Step runs one tick. A pending restart is served first; a paused or
// finished session does not advance.
func (p *Pipeline) Step(e *ecs.ECS) {
	s := sessionOf(e.World)
	if s != nil && s.Restart {
		Restart(e)
	}
	if s != nil && (s.Paused || s.GameOver) {
		return
	}
	for _, sys := range p.systems {
		sys(e)
	}
}

func advanceClock(e *ecs.ECS) {
	if c := clockOf(e.World); c != nil {
		c.Tick++
	}
}
