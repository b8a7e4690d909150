package components

import (
	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds the borrowed clip set of a character and the cursor of
// the clip it is playing.
type AnimationData struct {
	Set    *assets.AnimationSet
	Cursor *animations.Animation
	Key    string
}

// Play switches to the clip named key and rewinds the cursor. Without data
// for key the cursor still runs so frame gates fall back cleanly.
func (a *AnimationData) Play(key string) {
	a.Key = key
	if a.Cursor == nil {
		a.Cursor = &animations.Animation{}
	}
	def, ok := a.Set.Lookup(key)
	if !ok {
		a.Cursor.Reset(0, 0, 1, 5, false)
		return
	}
	a.Cursor.Reset(def.First, def.Last, def.Step, def.Speed, false)
}

// Rewind restarts the current clip.
func (a *AnimationData) Rewind() {
	if a.Cursor != nil {
		a.Cursor.Restart()
	}
}

// Frames returns the length of clip key, 0 without data.
func (a *AnimationData) Frames(key string) int {
	return a.Set.Frames(key)
}

// Has reports whether clip key exists.
func (a *AnimationData) Has(key string) bool {
	_, ok := a.Set.Lookup(key)
	return ok
}

// Frame returns the unbounded cursor position.
func (a *AnimationData) Frame() int {
	if a.Cursor == nil {
		return 0
	}
	return a.Cursor.Cursor()
}

var Animation = donburi.NewComponentType[AnimationData]()
