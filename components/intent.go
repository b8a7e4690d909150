package components

import (
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// IntentData is what a character wants to do this tick.
type IntentData struct {
	Move    gamemath.Vec2 // normalized or zero
	Face    int           // -1, 0 or 1; 0 keeps the current facing
	Attack  bool
	Special bool
	Jump    bool
	Running bool
}

// IntentProvider supplies intents for one character. The state machine does
// not know whether a human or the AI is behind it.
type IntentProvider interface {
	Intent(w donburi.World, self *donburi.Entry) IntentData
}

// TriggerDiscarder is implemented by providers that buffer button edges.
// Edges pressed while the character is locked are dropped.
type TriggerDiscarder interface {
	DiscardTriggers()
}

type ControllerData struct {
	Provider IntentProvider
}

var Intent = donburi.NewComponentType[IntentData]()
var Controller = donburi.NewComponentType[ControllerData]()
