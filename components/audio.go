package components

import (
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// AudioData queues cues for the audio sink (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
