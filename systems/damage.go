package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
)

// ApplyDamage hits target for dmg. dir is the push direction; its depth
// component is ignored and the zero vector means no direction. It returns
// false when the hit was ignored: non-positive damage, a downed target or a
// dead one.
func ApplyDamage(w donburi.World, target *donburi.Entry, dmg int, knockback bool, dir gamemath.Vec2) bool {
	if dmg <= 0 || !target.Valid() {
		return false
	}
	st := components.State.Get(target)
	death := components.Death.Get(target)
	if st.Is(cfg.StateDown) || death.Dead {
		return false
	}

	hp := components.Health.Get(target)
	tr := components.Transform.Get(target)
	mo := components.Motion.Get(target)

	hp.Current -= dmg
	components.Flash.Get(target).Duration = cfg.Combat.FlashTicks
	dir.Y = 0

	if target.HasComponent(tags.Player) {
		PlaySFX(w, cfg.SoundPlayerDamage)
	} else {
		PlaySFX(w, cfg.SoundEnemyDamage)
	}

	if hp.Current <= 0 {
		hp.Current = 0
		death.Dead = true
		st.Set(cfg.StateKnockback, cfg.Combat.KnockbackTicks)
		tr.VZ = cfg.Combat.LethalLift
		if !dir.IsZero() {
			mo.Knockback = dir.MulScalar(cfg.Combat.LethalSpeed)
		} else {
			side := 1.0
			if rng := rngOf(w); rng != nil && rng.Intn(2) == 0 {
				side = -1
			}
			mo.Knockback = gamemath.V(side*cfg.Combat.LethalScatter, 0)
		}
		return true
	}

	if knockback {
		st.Set(cfg.StateKnockback, cfg.Combat.KnockbackTicks)
		tr.VZ = cfg.Combat.KnockbackLift
		if !dir.IsZero() {
			mo.Knockback = dir.MulScalar(cfg.Combat.KnockbackSpeed)
		}
		return true
	}

	st.Set(cfg.StateStun, cfg.Combat.StunTicks)
	tr.Position.X += dir.X * cfg.Combat.StunNudge
	return true
}

// pushDirection is the unit vector from a to b, or +X when they coincide.
func pushDirection(from, to gamemath.Vec2) gamemath.Vec2 {
	d := to.Sub(from)
	if d.IsZero() {
		return gamemath.V(1, 0)
	}
	return d.Normalized()
}
