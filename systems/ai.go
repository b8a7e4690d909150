package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// AIController drives a thug: it keeps a stand-off point around the player,
// walks toward it and punches after a short wind-up when in reach.
type AIController struct {
	rng *rand.Rand
}

// NewAIController returns a controller drawing from rng. A nil rng falls
// back to the world's random source.
func NewAIController(rng *rand.Rand) *AIController {
	return &AIController{rng: rng}
}

func (a *AIController) Intent(w donburi.World, self *donburi.Entry) components.IntentData {
	rng := a.rng
	if rng == nil {
		if r := rngOf(w); r != nil {
			rng = r.Rand
		}
	}
	ai := components.AI.Get(self)
	defer func() {
		if ai.Cooldown > 0 {
			ai.Cooldown--
		}
	}()

	player, ok := PlayerEntry(w)
	if !ok || rng == nil {
		return components.IntentData{}
	}

	if rng.Float64() < cfg.Enemy.OffsetRerollChance {
		ai.TargetOffset = gamemath.V(
			float64(rng.Intn(2*cfg.Enemy.OffsetRangeX+1)-cfg.Enemy.OffsetRangeX),
			float64(rng.Intn(2*cfg.Enemy.OffsetRangeY+1)-cfg.Enemy.OffsetRangeY),
		)
	}

	pos := components.Transform.Get(self).Position
	target := components.Transform.Get(player).Position
	var in components.IntentData

	goal := target.Add(ai.TargetOffset)
	if pos.Distance(goal) > cfg.Enemy.ArriveDistance {
		dir := goal.Sub(pos).Normalized()
		in.Face = gamemath.Sign(dir.X)
		j := cfg.Enemy.SteerJitter
		in.Move = dir.Add(gamemath.V(rng.Float64()*2*j-j, rng.Float64()*2*j-j)).Normalized()
	}

	inReach := pos.Distance(target) < cfg.Enemy.AttackRange &&
		math.Abs(target.Y-pos.Y) < cfg.Enemy.AttackBandY &&
		ai.Cooldown <= 0
	if !inReach {
		ai.Prep = 0
		return in
	}
	if !components.State.Get(player).Is(cfg.StateDown) {
		ai.Prep++
	}
	if ai.Prep >= cfg.Enemy.AttackPrep {
		in.Attack = true
		ai.Prep = 0
		ai.Cooldown = cfg.Enemy.AttackCooldown
	}
	return in
}
