package systems

import (
	"math"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// TryJump starts a jump or the second jump of a double jump.
func TryJump(e *donburi.Entry) bool {
	state := components.State.Get(e)
	fighter := components.Fighter.Get(e)
	if !state.Is(cfg.StateIdle, cfg.StateWalk, cfg.StateJump) || fighter.Jumps >= cfg.Physics.MaxJumps {
		return false
	}
	components.Transform.Get(e).VZ = cfg.Physics.JumpPower
	state.Set(cfg.StateJump, 0)
	fighter.Jumps++
	return true
}

// TryAttack routes the attack trigger to the character's moveset.
func TryAttack(w donburi.World, e *donburi.Entry) bool {
	switch components.Fighter.Get(e).Moveset {
	case cfg.MovesetBrawler:
		return tryCombo(w, e)
	case cfg.MovesetThug:
		return tryPunch(w, e)
	}
	return false
}

// tryCombo advances the three hit chain. An attack is only accepted once the
// current clip has reached its last frame and recovery has elapsed.
func tryCombo(w donburi.World, e *donburi.Entry) bool {
	state := components.State.Get(e)
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)

	if fighter.Recovery > 0 {
		return false
	}
	if state.Current == cfg.StateAttack && anim.Cursor != nil && !anim.Cursor.Finished() {
		return false
	}

	now := NowMs(w)
	if fighter.LastAttackMs < 0 || now-fighter.LastAttackMs > cfg.Combat.ComboWindowMs {
		fighter.ComboIndex = 0
	} else {
		fighter.ComboIndex = (fighter.ComboIndex + 1) % cfg.Combat.ComboLength
	}
	fighter.LastAttackMs = now

	key := cfg.AttackAnim(fighter.ComboIndex)
	anim.Play(key)
	frames := anim.Frames(key)
	if frames == 0 {
		state.SetAttack(cfg.AttackCombo, cfg.Combat.FallbackDuration)
		fighter.Recovery = 0
		return true
	}

	duration := frames * cfg.Combat.FrameTicks
	state.SetAttack(cfg.AttackCombo, duration)
	if fighter.ComboIndex == cfg.Combat.ComboLength-1 {
		fighter.Recovery = duration + cfg.Combat.FinisherRecovery
	} else {
		fighter.Recovery = duration + cfg.Combat.RecoveryDelay
	}
	return true
}

// tryPunch is the thug's single attack. It resolves immediately against the
// player.
func tryPunch(w donburi.World, e *donburi.Entry) bool {
	state := components.State.Get(e)
	if state.Current != cfg.StateAttack {
		components.Animation.Get(e).Rewind()
	}
	state.SetAttack(cfg.AttackPunch, cfg.Enemy.PunchDuration)

	player, ok := PlayerEntry(w)
	if !ok {
		return true
	}
	self := components.Transform.Get(e).Position
	target := components.Transform.Get(player).Position
	if d := target.X - self.X; d != 0 {
		components.Fighter.Get(e).Facing = gamemath.Sign(d)
	}

	dy := math.Abs(target.Y - self.Y)
	if self.Distance(target) < cfg.Enemy.PunchReach && dy < cfg.Combat.HitRangeY*cfg.Combat.HitRangeYMult {
		ApplyDamage(w, player, cfg.Enemy.PunchDamage, false, gamemath.Vec2{})
	}
	return true
}

// trySpecialOrDive dispatches the special trigger: a dive while airborne,
// the health-paid area attack on the ground.
func trySpecialOrDive(w donburi.World, e *donburi.Entry) bool {
	if components.Fighter.Get(e).Moveset != cfg.MovesetBrawler {
		return false
	}
	state := components.State.Get(e)
	tr := components.Transform.Get(e)
	if state.Current == cfg.StateJump && !tr.Grounded() {
		state.SetAttack(cfg.AttackDive, 0)
		tr.VZ = cfg.Physics.DivePower
		return true
	}
	return trySpecial(w, e)
}

func trySpecial(w donburi.World, e *donburi.Entry) bool {
	hp := components.Health.Get(e)
	if hp.Current <= cfg.Combat.SpecialCost {
		return false
	}
	hp.Current -= cfg.Combat.SpecialCost

	state := components.State.Get(e)
	fighter := components.Fighter.Get(e)
	fighter.ComboIndex = 0
	// the follow-up gate runs on the opener's clip
	components.Animation.Get(e).Play(cfg.AttackAnim(0))
	state.SetAttack(cfg.AttackSpecial, cfg.Combat.SpecialDuration)

	areaBlast(w, e, cfg.Combat.SpecialDamage, cfg.Combat.SpecialRadius)
	return true
}

// landDive ends a dive on touchdown with a shockwave.
func landDive(w donburi.World, e *donburi.Entry) {
	components.State.Get(e).Set(cfg.StateIdle, 0)
	components.Fighter.Get(e).JumpAnimTimer = 0
	areaBlast(w, e, cfg.Combat.DiveDamage, cfg.Combat.DiveRadius)
}

// areaBlast knocks back every targetable opponent within radius.
func areaBlast(w donburi.World, e *donburi.Entry, dmg int, radius float64) int {
	self := components.Transform.Get(e).Position
	hits := 0
	for _, o := range Opponents(w, e) {
		if !Targetable(o) {
			continue
		}
		pos := components.Transform.Get(o).Position
		if self.Distance(pos) >= radius {
			continue
		}
		if ApplyDamage(w, o, dmg, true, pushDirection(self, pos)) {
			hits++
		}
	}
	if hits > 0 {
		PlaySFX(w, cfg.SoundImpactSpecial)
	}
	return hits
}
