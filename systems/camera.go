package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera scrolls right toward the player while no wave holds the
// arena. The camera never scrolls back.
func UpdateCamera(e *ecs.ECS) {
	cam := cameraOf(e.World)
	player, ok := PlayerEntry(e.World)
	if cam == nil || !ok {
		return
	}
	if dir := directorOf(e.World); dir != nil && dir.Active {
		return
	}

	anchor := cam.Position.X + float64(cfg.Screen.Width)*cfg.Camera.AnchorRatio
	x := components.Transform.Get(player).Position.X
	if x > anchor {
		cam.Position.X += (x - anchor) * cfg.Camera.FollowSmoothing
	}
}

// CameraX returns the scroll offset.
func CameraX(e *ecs.ECS) float64 {
	if cam := cameraOf(e.World); cam != nil {
		return cam.Position.X
	}
	return 0
}
