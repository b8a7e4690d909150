package components

import (
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

type AIData struct {
	TargetOffset gamemath.Vec2 // desired stand-off from the player
	Prep         int
	Cooldown     int
}

var AI = donburi.NewComponentType[AIData]()
