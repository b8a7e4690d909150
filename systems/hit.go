package systems

import (
	"math"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHits resolves the player's combo attacks against the enemy roster.
// Only the combo has a frame-gated active window; the other attacks resolve
// when they are triggered.
func UpdateHits(ecs *ecs.ECS) {
	player, ok := PlayerEntry(ecs.World)
	if !ok {
		return
	}
	resolveCombo(ecs.World, player)
}

func resolveCombo(w donburi.World, e *donburi.Entry) {
	state := components.State.Get(e)
	if !state.Attacking(cfg.AttackCombo) {
		return
	}
	anim := components.Animation.Get(e)
	fighter := components.Fighter.Get(e)
	frame := anim.Frame()

	if !state.Attack.SwingDone && frame >= cfg.Combat.SwingFrame {
		state.Attack.SwingDone = true
		PlaySFX(w, cfg.SwingSound(fighter.ComboIndex))
	}

	activeFrame := cfg.Combat.ActiveFrame
	if !anim.Has(anim.Key) {
		activeFrame = 0
	}
	if state.Attack.HitConnected || frame < activeFrame {
		return
	}

	targets := hitTargets(w, e)
	if len(targets) == 0 {
		return
	}
	state.Attack.HitConnected = true

	finisher := fighter.ComboIndex == cfg.Combat.ComboLength-1
	dmg := cfg.Combat.HitDamage
	if finisher {
		dmg = cfg.Combat.FinisherDamage
	}

	impact := cfg.SoundImpact
	for _, t := range targets {
		if components.Health.Get(t).Current <= dmg {
			impact = cfg.SoundImpactSpecial
			break
		}
	}
	PlaySFX(w, impact)

	now := NowMs(w)
	dir := gamemath.V(float64(fighter.Facing), 0)
	tr := components.Transform.Get(e)
	var sum gamemath.Vec2
	for _, t := range targets {
		if fighter.LastHitMs >= 0 && now-fighter.LastHitMs < cfg.Combat.ComboHitTimeout {
			fighter.ComboHits++
		} else {
			fighter.ComboHits = 1
		}
		fighter.LastHitMs = now

		if ApplyDamage(w, t, dmg, finisher, dir) && finisher {
			components.Transform.Get(t).VZ = cfg.Combat.FinisherLift
		}
		sum = sum.Add(components.Transform.Get(t).Position)
	}

	if fighter.ComboHits >= 2 {
		avg := sum.MulScalar(1 / float64(len(targets)))
		pos := gamemath.V((avg.X+tr.Position.X)/2, avg.Y-cfg.Combat.ComboOffsetY)
		if hud := hudOf(w); hud != nil {
			hud.ArmCombo(fighter.ComboHits, pos, cfg.Combat.ComboDisplay,
				cfg.Display.ComboPopTicks, cfg.Display.ComboFadeTicks, cfg.Display.ComboPopScale)
		}
		PlaySFX(w, cfg.SoundCombo)
	}
}

// hitTargets returns the targetable opponents inside the forward hit box.
// A small overlap behind the attacker still counts.
func hitTargets(w donburi.World, e *donburi.Entry) []*donburi.Entry {
	self := components.Transform.Get(e).Position
	right := components.Fighter.Get(e).FacingRight()
	var out []*donburi.Entry
	for _, o := range Opponents(w, e) {
		if !Targetable(o) {
			continue
		}
		pos := components.Transform.Get(o).Position
		dx := pos.X - self.X
		if self.Distance(pos) >= cfg.Combat.HitRangeX {
			continue
		}
		if math.Abs(pos.Y-self.Y) >= cfg.Combat.HitRangeY*cfg.Combat.HitRangeYMult {
			continue
		}
		if right && dx <= -cfg.Combat.BackTolerance {
			continue
		}
		if !right && dx >= cfg.Combat.BackTolerance {
			continue
		}
		out = append(out, o)
	}
	return out
}
