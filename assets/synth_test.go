package assets

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/automoto/streetbrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeToneLength(t *testing.T) {
	def := config.ToneDef{Wave: config.WaveSine, StartHz: 440, EndHz: 440, Duration: 0.5, Volume: 0.5}
	pcm := SynthesizeTone(def, 8000, rand.New(rand.NewSource(12345)))

	assert.Len(t, pcm, 4000*bytesPerFrame)
}

func TestSynthesizeToneFadesOut(t *testing.T) {
	def := config.ToneDef{Wave: config.WaveSquare, StartHz: 100, EndHz: 100, Duration: 0.1, Volume: 1}
	pcm := SynthesizeTone(def, 8000, rand.New(rand.NewSource(12345)))
	require.NotEmpty(t, pcm)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	lastIdx := len(pcm) - bytesPerFrame
	last := int16(binary.LittleEndian.Uint16(pcm[lastIdx:]))
	assert.Greater(t, abs16(first), abs16(last))

	// both channels carry the same sample
	assert.Equal(t, pcm[0:2], pcm[2:4])
}

func TestSynthesizeEmpty(t *testing.T) {
	assert.Nil(t, SynthesizeTone(config.ToneDef{}, 44100, rand.New(rand.NewSource(1))))
	assert.Nil(t, SynthesizeMusic(nil, 4, 1, 44100))
}

func TestSynthesizeSFXCoversEveryCue(t *testing.T) {
	bank := SynthesizeSFX(config.Sound.Tones, 8000, rand.New(rand.NewSource(12345)))
	for id := range config.Sound.Tones {
		assert.NotEmpty(t, bank[id], "cue %d", id)
	}
}

func TestSynthesizeMusicLoop(t *testing.T) {
	pcm := SynthesizeMusic(config.Sound.MusicNotes, 1, 0.5, 8000)
	assert.Len(t, pcm, 8000*bytesPerFrame)
}

func abs16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}
