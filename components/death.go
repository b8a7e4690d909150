package components

import "github.com/yohamta/donburi"

// DeathData tracks the two phase death: Dead is set on lethal damage, the
// blink runs once the body is down, and Finished marks it for removal.
type DeathData struct {
	Dead       bool
	BlinkTimer int
	Visible    bool
	Finished   bool
}

var Death = donburi.NewComponentType[DeathData]()
