package systems

import (
	"sort"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// singleton returns the first entry holding c, or nil.
func singleton[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	entry, ok := c.First(w)
	if !ok {
		return nil
	}
	return c.Get(entry)
}

func clockOf(w donburi.World) *components.ClockData {
	return singleton(w, components.Clock)
}

// NowMs returns the simulated time in milliseconds.
func NowMs(w donburi.World) int64 {
	if c := clockOf(w); c != nil {
		return c.Millis()
	}
	return 0
}

func rngOf(w donburi.World) *components.RNGData {
	return singleton(w, components.RNG)
}

func directorOf(w donburi.World) *components.DirectorData {
	return singleton(w, components.Director)
}

func cameraOf(w donburi.World) *components.CameraData {
	return singleton(w, components.Camera)
}

func hudOf(w donburi.World) *components.HUDData {
	return singleton(w, components.HUD)
}

func sessionOf(w donburi.World) *components.SessionData {
	return singleton(w, components.Session)
}

func spaceOf(w donburi.World) *resolv.Space {
	return singleton(w, components.Space)
}

// PlayerEntry returns the player character.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// Enemies returns the live enemy roster, dying ones included, in spawn order.
func Enemies(w donburi.World) []*donburi.Entry {
	var roster []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		roster = append(roster, e)
	})
	sortBySpawnOrder(roster)
	return roster
}

// Roster returns the player followed by every enemy.
func Roster(w donburi.World) []*donburi.Entry {
	var roster []*donburi.Entry
	if p, ok := PlayerEntry(w); ok {
		roster = append(roster, p)
	}
	return append(roster, Enemies(w)...)
}

// Opponents returns the characters e fights against.
func Opponents(w donburi.World, e *donburi.Entry) []*donburi.Entry {
	if e.HasComponent(tags.Player) {
		return Enemies(w)
	}
	if p, ok := PlayerEntry(w); ok {
		return []*donburi.Entry{p}
	}
	return nil
}

// sortBySpawnOrder keeps iteration stable when storage reorders entries.
func sortBySpawnOrder(es []*donburi.Entry) {
	sort.SliceStable(es, func(i, j int) bool {
		return components.Fighter.Get(es[i]).Seq < components.Fighter.Get(es[j]).Seq
	})
}

// NextSeq hands out spawn sequence numbers.
func NextSeq(w donburi.World) int64 {
	c := clockOf(w)
	if c == nil {
		return 0
	}
	c.Spawned++
	return c.Spawned
}

// Targetable reports whether a character may be hit, pushed against or
// chased. Downed and dead characters are not.
func Targetable(e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	st := components.State.Get(e)
	d := components.Death.Get(e)
	return !d.Dead && !st.Is(cfg.StateDown)
}

// HUDState returns the HUD feedback for the presentation.
func HUDState(w donburi.World) *components.HUDData {
	return hudOf(w)
}

// DirectorState returns the wave bookkeeping for the presentation.
func DirectorState(w donburi.World) *components.DirectorData {
	return directorOf(w)
}

// BodySpace returns the broadphase grid.
func BodySpace(w donburi.World) *resolv.Space {
	return spaceOf(w)
}

// CameraState returns the scroll state.
func CameraState(w donburi.World) *components.CameraData {
	return cameraOf(w)
}
