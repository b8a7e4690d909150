package factory

import (
	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/assets/animations"
	"github.com/automoto/streetbrawl/components"
	"github.com/yohamta/donburi"
)

// Animation keys of the character kinds in the repository.
const (
	PlayerAnimations = "player"
	EnemyAnimations  = "thug"
)

// bindAnimations lends e the clip set named key. A kind without data gets a
// nil set and plays the default pose.
func bindAnimations(e *donburi.Entry, repo *assets.Repository, key string) {
	components.Animation.SetValue(e, components.AnimationData{
		Set:    repo.Set(key),
		Cursor: &animations.Animation{},
	})
}
