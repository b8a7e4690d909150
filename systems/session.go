package systems

import (
	"log"

	"github.com/automoto/streetbrawl/components"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause flag. A finished game cannot be paused.
func TogglePause(e *ecs.ECS) {
	s := sessionOf(e.World)
	if s == nil || s.GameOver {
		return
	}
	s.Paused = !s.Paused
}

// RequestRestart asks for a restart at the start of the next tick. It is
// honoured only while paused or after game over.
func RequestRestart(e *ecs.ECS) {
	s := sessionOf(e.World)
	if s == nil || !(s.Paused || s.GameOver) {
		return
	}
	s.Restart = true
}

// Session returns the session flags, nil before the world is created.
func Session(e *ecs.ECS) *components.SessionData {
	return sessionOf(e.World)
}

// Restart resets the brawl in place. The tick clock keeps running.
func Restart(e *ecs.ECS) {
	for _, en := range Enemies(e.World) {
		RemoveCharacter(e.World, en)
	}
	if p, ok := PlayerEntry(e.World); ok {
		InitFighter(e.World, p, PlayerSpec())
	}
	if cam := cameraOf(e.World); cam != nil {
		cam.Position.X = 0
		cam.Position.Y = 0
	}
	ResetDirector(e.World)
	if hud := hudOf(e.World); hud != nil {
		hud.ClearFeedback()
	}
	if a := singleton(e.World, components.Audio); a != nil {
		a.PendingSFX = nil
	}
	if s := sessionOf(e.World); s != nil {
		*s = components.SessionData{}
	}
	log.Printf("brawl restarted")
}
