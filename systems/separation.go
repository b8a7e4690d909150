package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyMargin shifts world coordinates into the broadphase grid so that
// enemies spawned left of the screen still land inside it.
const BodyMargin = 400

// SpaceSize is the extent of the broadphase grid.
func SpaceSize() (int, int) {
	return int(cfg.Wave.WorldEndX) + 2*BodyMargin, cfg.Screen.Height + int(cfg.Separation.BodySize)
}

// NewBody creates the broadphase square of a character. Data holds the
// owning entity.
func NewBody(e *donburi.Entry, extraTags ...string) *resolv.Object {
	size := cfg.Separation.BodySize
	pos := components.Transform.Get(e).Position
	t := append([]string{tags.ResolvFighter}, extraTags...)
	obj := resolv.NewObject(pos.X+BodyMargin-size/2, pos.Y-size/2, size, size, t...)
	obj.Data = e.Entity()
	return obj
}

// AttachBody gives e a body and registers it with the world's space.
func AttachBody(w donburi.World, e *donburi.Entry, extraTags ...string) {
	obj := NewBody(e, extraTags...)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := spaceOf(w); space != nil {
		space.Add(obj)
	}
}

// DetachBody removes e's body from the space.
func DetachBody(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	if space := spaceOf(w); space != nil {
		space.Remove(obj)
	}
}

// SyncBody moves e's body to its current position.
func SyncBody(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	size := cfg.Separation.BodySize
	pos := components.Transform.Get(e).Position
	obj.X = pos.X + BodyMargin - size/2
	obj.Y = pos.Y - size/2
	if obj.Space != nil {
		obj.Update()
	}
}

// UpdateSeparation pushes overlapping characters apart. Only the character
// being processed moves, so a pair converges over several ticks. Afterwards
// every character is clamped to the floor band.
func UpdateSeparation(ecs *ecs.ECS) {
	roster := Roster(ecs.World)
	for _, e := range roster {
		SyncBody(e)
	}
	for _, e := range roster {
		separate(e, roster)
	}
	for _, e := range roster {
		tr := components.Transform.Get(e)
		tr.Position.Y = gamemath.Clamp(tr.Position.Y, cfg.MinDepth(), cfg.MaxDepth())
		SyncBody(e)
	}
}

func separate(e *donburi.Entry, roster []*donburi.Entry) {
	tr := components.Transform.Get(e)
	for _, o := range neighbours(e, roster) {
		if o.Entity() == e.Entity() || components.State.Get(o).Is(cfg.StateDown) {
			continue
		}
		diff := tr.Position.Sub(components.Transform.Get(o).Position)
		d := diff.Magnitude()
		if d <= cfg.Separation.MinDistance || d >= cfg.Separation.Radius {
			continue
		}
		push := (cfg.Separation.Radius - d) * cfg.Separation.Strength
		tr.Position = tr.Position.Add(diff.Normalized().MulScalar(push))
		SyncBody(e)
	}
}

// neighbours narrows roster to the characters whose bodies touch e's grown
// square, keeping roster order. Bodies outside the grid fall back to the
// whole roster.
func neighbours(e *donburi.Entry, roster []*donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil || !insideSpace(obj) {
		return roster
	}
	r := cfg.Separation.Radius
	probe := resolv.NewObject(obj.X-r, obj.Y-r, obj.W+2*r, obj.H+2*r)
	obj.Space.Add(probe)
	defer obj.Space.Remove(probe)

	near := map[donburi.Entity]bool{}
	if c := probe.Check(0, 0, tags.ResolvFighter); c != nil {
		for _, o := range c.Objects {
			if ent, ok := o.Data.(donburi.Entity); ok {
				near[ent] = true
			}
		}
	}
	var out []*donburi.Entry
	for _, o := range roster {
		if near[o.Entity()] {
			out = append(out, o)
		}
	}
	return out
}

func insideSpace(obj *resolv.Object) bool {
	w, h := SpaceSize()
	return obj.X >= 0 && obj.Y >= 0 && obj.X+obj.W <= float64(w) && obj.Y+obj.H <= float64(h)
}
