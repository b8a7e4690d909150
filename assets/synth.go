package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/automoto/streetbrawl/config"
)

// bytesPerFrame is one stereo frame of signed 16-bit little endian samples.
const bytesPerFrame = 4

// SynthesizeTone renders a cue as PCM in the format the audio context plays.
func SynthesizeTone(def config.ToneDef, sampleRate int, rng *rand.Rand) []byte {
	n := int(def.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := def.StartHz + (def.EndHz-def.StartHz)*t

		var v float64
		switch def.Wave {
		case config.WaveSquare:
			v = 1
			if math.Sin(phase) <= 0 {
				v = -1
			}
		case config.WaveNoise:
			v = rng.Float64()*2 - 1
		default:
			v = math.Sin(phase)
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := 1 - t
		putFrame(out[i*bytesPerFrame:], v*def.Volume*env)
	}
	return out
}

// SynthesizeMusic renders one loop of the stage theme: a pulse arpeggio over
// a sine bass an octave below.
func SynthesizeMusic(notes []float64, seconds, volume float64, sampleRate int) []byte {
	n := int(seconds * float64(sampleRate))
	if n <= 0 || len(notes) == 0 {
		return nil
	}
	out := make([]byte, n*bytesPerFrame)
	perNote := seconds / float64(len(notes))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := notes[int(t/perNote)%len(notes)]

		pulse := 1.0
		if math.Sin(2*math.Pi*freq*t) <= 0 {
			pulse = -1
		}
		v := 0.6*pulse + 0.4*math.Sin(2*math.Pi*(freq/2)*t)
		putFrame(out[i*bytesPerFrame:], v*volume)
	}
	return out
}

// SynthesizeSFX renders every configured cue.
func SynthesizeSFX(tones map[config.SoundID]config.ToneDef, sampleRate int, rng *rand.Rand) map[config.SoundID][]byte {
	bank := make(map[config.SoundID][]byte, len(tones))
	for id, def := range tones {
		bank[id] = SynthesizeTone(def, sampleRate, rng)
	}
	return bank
}

func putFrame(b []byte, v float64) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := uint16(int16(v * math.MaxInt16))
	binary.LittleEndian.PutUint16(b[0:], s)
	binary.LittleEndian.PutUint16(b[2:], s)
}
