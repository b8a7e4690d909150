package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// FighterSpec describes a freshly spawned character.
type FighterSpec struct {
	Moveset    cfg.MovesetID
	Locomotion cfg.LocomotionConfig
	Health     int
	Position   gamemath.Vec2
	Facing     int
}

// InitFighter puts e into its spawn state. It is used by the factory and by
// restart, so it leaves the controller, animation set and body alone.
func InitFighter(w donburi.World, e *donburi.Entry, spec FighterSpec) {
	facing := spec.Facing
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	seq := components.Fighter.Get(e).Seq
	if seq == 0 {
		seq = NextSeq(w)
	}

	components.Transform.SetValue(e, components.TransformData{Position: spec.Position})
	components.Motion.SetValue(e, components.MotionData{})
	components.Fighter.SetValue(e, components.FighterData{
		Seq:          seq,
		Moveset:      spec.Moveset,
		Facing:       facing,
		LastAttackMs: -1,
		LastHitMs:    -1,
	})
	components.Locomotion.SetValue(e, components.LocomotionData{
		Accel:                spec.Locomotion.Accel,
		MaxSpeed:             spec.Locomotion.MaxSpeed,
		RunAccelMult:         spec.Locomotion.RunAccelMult,
		RunSpeedMult:         spec.Locomotion.RunSpeedMult,
		RootedWhileAttacking: spec.Locomotion.RootedWhileAttacking,
	})
	components.Health.SetValue(e, components.HealthData{Current: spec.Health, Max: spec.Health})
	components.State.SetValue(e, components.StateData{Current: cfg.StateIdle})
	components.Death.SetValue(e, components.DeathData{Visible: true})
	components.Flash.SetValue(e, components.FlashData{})
	components.Intent.SetValue(e, components.IntentData{})

	anim := components.Animation.Get(e)
	anim.Play(cfg.AnimIdle)

	SyncBody(e)
}

// PlayerSpec is the spawn description of the player character.
func PlayerSpec() FighterSpec {
	return FighterSpec{
		Moveset:    cfg.MovesetBrawler,
		Locomotion: cfg.Player.Locomotion,
		Health:     cfg.Player.Health,
		Position:   gamemath.V(cfg.Player.SpawnX, cfg.Player.SpawnY),
		Facing:     cfg.DirectionRight,
	}
}

// EnemySpec is the spawn description of a thug at pos.
func EnemySpec(pos gamemath.Vec2) FighterSpec {
	return FighterSpec{
		Moveset:    cfg.MovesetThug,
		Locomotion: cfg.Enemy.Locomotion,
		Health:     cfg.Enemy.Health,
		Position:   pos,
		Facing:     cfg.DirectionLeft,
	}
}
