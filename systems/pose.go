package systems

import (
	"sort"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
)

// Pose is everything the presentation needs to draw one character.
type Pose struct {
	Entity      donburi.Entity
	Player      bool
	State       cfg.StateID
	Key         string
	Frame       int
	FacingRight bool
	World       gamemath.Vec2 // floor position
	Z           float64
	Flash       bool
	Visible     bool
	Scale       float64
	Priority    int
}

// SortKey orders poses back to front.
func (p Pose) SortKey() float64 {
	return p.World.Y + float64(p.Priority)
}

// PoseOf maps a character to its presentation pose.
func PoseOf(e *donburi.Entry) Pose {
	tr := components.Transform.Get(e)
	st := components.State.Get(e)
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	death := components.Death.Get(e)

	p := Pose{
		Entity:      e.Entity(),
		Player:      e.HasComponent(tags.Player),
		State:       st.Current,
		FacingRight: fighter.FacingRight(),
		World:       tr.Position,
		Z:           tr.Z,
		Flash:       components.Flash.Get(e).Duration > 0,
		Visible:     !death.Dead || death.Visible,
		Scale:       DepthScale(tr.Position.Y),
	}

	switch st.Current {
	case cfg.StateAttack:
		p.Priority = cfg.Display.AttackPriority
	case cfg.StateStun, cfg.StateKnockback, cfg.StateDown:
		p.Priority = cfg.Display.HurtPriority
	}

	p.Key = poseKey(st, fighter)
	frames := anim.Frames(p.Key)
	switch st.Current {
	case cfg.StateAttack:
		p.Frame = clampFrame(anim.Frame(), frames)
	case cfg.StateJump:
		p.Frame = clampFrame(int(float64(fighter.JumpAnimTimer)/cfg.Display.JumpFrameTicks), frames)
	case cfg.StateIdle, cfg.StateWalk:
		if frames > 0 {
			p.Frame = anim.Frame() % frames
		}
	}
	return p
}

func poseKey(st *components.StateData, fighter *components.FighterData) string {
	switch st.Current {
	case cfg.StateWalk:
		return cfg.AnimWalk
	case cfg.StateJump:
		return cfg.AnimJump
	case cfg.StateStun, cfg.StateKnockback:
		return cfg.AnimDamage
	case cfg.StateDown:
		return cfg.AnimGround
	case cfg.StateAttack:
		if st.Attack == nil {
			break
		}
		switch st.Attack.Kind {
		case cfg.AttackCombo:
			return cfg.AttackAnim(fighter.ComboIndex)
		case cfg.AttackSpecial:
			return cfg.AttackAnim(cfg.Combat.ComboLength - 1)
		case cfg.AttackDive:
			return cfg.AnimJump
		case cfg.AttackPunch:
			return cfg.AttackAnim(0)
		}
	}
	return cfg.AnimIdle
}

func clampFrame(f, frames int) int {
	if frames <= 0 || f < 0 {
		return 0
	}
	if f > frames-1 {
		return frames - 1
	}
	return f
}

// DepthScale is the perspective scale of a character standing at depth y.
func DepthScale(y float64) float64 {
	band := float64(cfg.Screen.Height) - cfg.Screen.FloorStartY
	return cfg.Display.ScaleBase + cfg.Display.ScaleRange*(y-cfg.Screen.FloorStartY)/band
}

// Poses returns the poses of every character sorted back to front.
func Poses(w donburi.World) []Pose {
	roster := Roster(w)
	out := make([]Pose, 0, len(roster))
	for _, e := range roster {
		out = append(out, PoseOf(e))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})
	return out
}
