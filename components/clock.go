package components

import (
	"math/rand"

	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// ClockData counts simulated ticks. Every time window in the game is
// measured against it, never against the wall clock.
type ClockData struct {
	Tick    int64
	Spawned int64 // characters created so far
}

// Millis returns the simulated time in milliseconds.
func (c *ClockData) Millis() int64 {
	return cfg.TicksToMs(c.Tick)
}

// RNGData is the random source shared by the director and the AI.
type RNGData struct {
	*rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()
var RNG = donburi.NewComponentType[RNGData]()
