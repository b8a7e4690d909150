package config

// SoundID represents a logical sound cue emitted by the simulation
type SoundID int

const (
	SoundNone SoundID = iota
	// Swing cues, one per combo step
	SoundSwing1
	SoundSwing2
	SoundSwing3
	// Impact cues
	SoundImpact
	SoundImpactSpecial
	// Damage received
	SoundPlayerDamage
	SoundEnemyDamage
	// Feedback
	SoundCombo
	SoundGoBell
)

// SwingSound returns the swing cue for a combo index.
func SwingSound(comboIndex int) SoundID {
	switch comboIndex {
	case 1:
		return SoundSwing2
	case 2:
		return SoundSwing3
	}
	return SoundSwing1
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Waveform is the oscillator used for a synthesized cue.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// ToneDef describes how a cue is synthesized: a linear sweep from StartHz
// to EndHz with a linear fade out.
type ToneDef struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones       map[SoundID]ToneDef
	MusicNotes  []float64
	MusicLength float64 // seconds per loop
	MusicVolume float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundSwing1:        {Wave: WaveSquare, StartHz: 150, EndHz: 90, Duration: 0.15, Volume: 0.6},
			SoundSwing2:        {Wave: WaveSquare, StartHz: 180, EndHz: 90, Duration: 0.18, Volume: 0.6},
			SoundSwing3:        {Wave: WaveSquare, StartHz: 100, EndHz: 150, Duration: 0.3, Volume: 0.7},
			SoundImpact:        {Wave: WaveNoise, StartHz: 100, EndHz: 100, Duration: 0.1, Volume: 0.5},
			SoundImpactSpecial: {Wave: WaveNoise, StartHz: 80, EndHz: 40, Duration: 0.3, Volume: 0.8},
			SoundPlayerDamage:  {Wave: WaveSine, StartHz: 400, EndHz: 200, Duration: 0.2, Volume: 0.5},
			SoundEnemyDamage:   {Wave: WaveNoise, StartHz: 200, EndHz: 125, Duration: 0.15, Volume: 0.4},
			SoundCombo:         {Wave: WaveSine, StartHz: 400, EndHz: 1000, Duration: 0.5, Volume: 0.4},
			SoundGoBell:        {Wave: WaveSine, StartHz: 1200, EndHz: 1040, Duration: 0.8, Volume: 0.5},
		},
		MusicNotes:  []float64{261.63, 329.63, 392.00, 523.25},
		MusicLength: 4,
		MusicVolume: 0.35,
	}
}
