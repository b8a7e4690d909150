package components

import "github.com/yohamta/donburi"

// DirectorData is the wave bookkeeping. It lives for the whole session and is
// reset on restart.
type DirectorData struct {
	Active       bool
	ToSpawn      int
	SpawnTimer   int
	NextTriggerX float64
	Wave         int
}

var Director = donburi.NewComponentType[DirectorData]()
