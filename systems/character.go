package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters advances every character once: the player first, then the
// enemies in spawn order.
func UpdateCharacters(ecs *ecs.ECS) {
	for _, e := range Roster(ecs.World) {
		UpdateCharacter(ecs.World, e)
	}
}

// UpdateCharacter runs one tick of a character's state machine and physics.
func UpdateCharacter(w donburi.World, e *donburi.Entry) {
	state := components.State.Get(e)
	tr := components.Transform.Get(e)
	fighter := components.Fighter.Get(e)
	death := components.Death.Get(e)

	if state.Timer > 0 {
		state.Timer--
		if state.Timer <= 0 {
			expireState(state, tr, death)
		}
	}

	updateDeathBlink(state, death)

	if fighter.Recovery > 0 {
		fighter.Recovery--
	}
	if flash := components.Flash.Get(e); flash.Duration > 0 {
		flash.Duration--
	}

	if anim := components.Animation.Get(e); anim.Cursor != nil {
		anim.Cursor.Update()
	}

	integrateVertical(w, e, state, tr, fighter)
	integratePlanar(e, state, tr)

	if state.Current.Locked() {
		components.Intent.SetValue(e, components.IntentData{})
		discardTriggers(e)
		return
	}
	if state.Current == cfg.StateJump {
		fighter.JumpAnimTimer++
	}

	intent := pollIntent(w, e)
	components.Intent.SetValue(e, intent)
	applyIntent(w, e, intent)
}

// expireState handles a state timer reaching zero.
func expireState(state *components.StateData, tr *components.TransformData, death *components.DeathData) {
	switch {
	case state.Current == cfg.StateKnockback && !tr.Grounded():
		// keep flying until landing turns it into DOWN
		state.Timer = 1
	case state.Current == cfg.StateDown:
		if !death.Dead {
			state.Set(cfg.StateIdle, 0)
		}
	case tr.Grounded():
		state.Set(cfg.StateIdle, 0)
	default:
		state.Set(cfg.StateJump, 0)
	}
}

func updateDeathBlink(state *components.StateData, death *components.DeathData) {
	if !death.Dead || state.Current != cfg.StateDown || state.Timer > 0 {
		return
	}
	death.BlinkTimer++
	if death.BlinkTimer%cfg.Death.BlinkInterval == 0 {
		death.Visible = !death.Visible
	}
	if death.BlinkTimer > cfg.Death.BlinkDuration {
		death.Finished = true
	}
}

func integrateVertical(w donburi.World, e *donburi.Entry, state *components.StateData, tr *components.TransformData, fighter *components.FighterData) {
	if tr.Z <= 0 && tr.VZ == 0 {
		return
	}
	tr.Z += tr.VZ
	tr.VZ -= cfg.Physics.Gravity
	if tr.Z > 0 {
		return
	}

	tr.Z = 0
	tr.VZ = 0
	fighter.Jumps = 0

	switch {
	case state.Attacking(cfg.AttackDive):
		landDive(w, e)
	case state.Current == cfg.StateJump:
		state.Set(cfg.StateIdle, 0)
		fighter.JumpAnimTimer = 0
	case state.Current == cfg.StateKnockback:
		state.Set(cfg.StateDown, cfg.Combat.DownTicks)
		components.Motion.Get(e).Knockback = gamemath.Vec2{}
	case state.Current == cfg.StateStun:
		state.Set(cfg.StateIdle, 0)
	}
}

func integratePlanar(e *donburi.Entry, state *components.StateData, tr *components.TransformData) {
	mo := components.Motion.Get(e)
	switch state.Current {
	case cfg.StateKnockback:
		tr.Position = tr.Position.Add(mo.Knockback)
		mo.Knockback = mo.Knockback.MulScalar(cfg.Physics.KnockbackDecay)
	case cfg.StateDown:
		mo.Knockback = gamemath.Vec2{}
	default:
		aerialAttack := state.Current == cfg.StateAttack && !tr.Grounded()
		if aerialAttack {
			mo.Velocity = gamemath.SnapStop(mo.Velocity, cfg.Physics.StopSpeed)
		} else {
			mo.Velocity = gamemath.ApplyFriction(mo.Velocity, cfg.Physics.Friction, cfg.Physics.StopSpeed)
		}
		tr.Position = tr.Position.Add(mo.Velocity)
	}
}

func pollIntent(w donburi.World, e *donburi.Entry) components.IntentData {
	ctrl := components.Controller.Get(e)
	if ctrl.Provider == nil {
		return components.IntentData{}
	}
	return ctrl.Provider.Intent(w, e)
}

// discardTriggers drops presses made during a lock. Providers that do not
// buffer edges are not polled, so AI timers hold still.
func discardTriggers(e *donburi.Entry) {
	if d, ok := components.Controller.Get(e).Provider.(components.TriggerDiscarder); ok {
		d.DiscardTriggers()
	}
}

// applyIntent turns an intent into triggers and steering. Triggers go first
// so an accepted attack roots the character this same tick.
func applyIntent(w donburi.World, e *donburi.Entry, in components.IntentData) {
	fighter := components.Fighter.Get(e)
	fighter.Running = in.Running

	if in.Jump {
		TryJump(e)
	}
	if in.Special {
		trySpecialOrDive(w, e)
	}
	if in.Attack {
		TryAttack(w, e)
	}
	steer(e, in)
}

// steer accelerates toward the intended direction.
func steer(e *donburi.Entry, in components.IntentData) {
	state := components.State.Get(e)
	tr := components.Transform.Get(e)
	mo := components.Motion.Get(e)
	fighter := components.Fighter.Get(e)
	loco := components.Locomotion.Get(e)

	if loco.RootedWhileAttacking && state.Current == cfg.StateAttack && state.Timer > 0 && tr.Grounded() {
		return
	}

	if in.Move.IsZero() {
		if state.Current == cfg.StateWalk {
			state.Set(cfg.StateIdle, 0)
		}
		return
	}

	if in.Face != 0 {
		fighter.Facing = in.Face
	}

	accel := loco.Accel
	maxSpeed := loco.MaxSpeed
	if fighter.Running {
		accel *= loco.RunAccelMult
		maxSpeed *= loco.RunSpeedMult
	}
	mo.Velocity = gamemath.ClampSpeed(mo.Velocity.Add(in.Move.MulScalar(accel)), maxSpeed)

	if tr.Grounded() && state.Current != cfg.StateAttack {
		state.Set(cfg.StateWalk, 0)
	}
}
