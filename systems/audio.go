package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a fire-and-forget cue for the audio sink.
func PlaySFX(w donburi.World, soundID cfg.SoundID) {
	if soundID == cfg.SoundNone {
		return
	}
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// DrainSFX hands the queued cues to the caller and clears the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	out := make([]cfg.SoundID, len(audioData.PendingSFX))
	copy(out, audioData.PendingSFX)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return out
}
