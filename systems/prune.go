package systems

import (
	"github.com/automoto/streetbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PruneEnemies removes enemies whose death sequence has finished. Removal is
// collected first and applied after the scan.
func PruneEnemies(e *ecs.ECS) {
	var done []*donburi.Entry
	for _, en := range Enemies(e.World) {
		if components.Death.Get(en).Finished {
			done = append(done, en)
		}
	}
	for _, en := range done {
		RemoveCharacter(e.World, en)
	}
}

// RemoveCharacter deletes a character and its body.
func RemoveCharacter(w donburi.World, en *donburi.Entry) {
	if !en.Valid() {
		return
	}
	DetachBody(w, en)
	w.Remove(en.Entity())
}
