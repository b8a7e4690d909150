package components

import "github.com/yohamta/donburi"

// SessionData stores pause and game over state
type SessionData struct {
	Paused   bool
	GameOver bool
	Restart  bool // requested, served at the start of the next tick
}

var Session = donburi.NewComponentType[SessionData]()
