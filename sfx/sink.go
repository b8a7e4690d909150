package sfx

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/automoto/streetbrawl/assets"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Sink plays the cues queued by the simulation through ebiten's audio
// context. Each cue owns one player that is rewound on every trigger.
type Sink struct {
	ctx     *audio.Context
	players map[cfg.SoundID]*audio.Player
	music   *audio.Player
	volume  float64
	mute    bool
}

// NewSink synthesizes the cue bank and the music loop. seed feeds the noise
// generator.
func NewSink(opts cfg.Options) (*Sink, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	s := &Sink{
		ctx:     ctx,
		players: map[cfg.SoundID]*audio.Player{},
		volume:  opts.Volume,
		mute:    opts.Mute,
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	for id, pcm := range assets.SynthesizeSFX(cfg.Sound.Tones, cfg.Audio.SampleRate, rng) {
		s.players[id] = ctx.NewPlayerFromBytes(pcm)
	}

	loop := assets.SynthesizeMusic(cfg.Sound.MusicNotes, cfg.Sound.MusicLength, cfg.Sound.MusicVolume, cfg.Audio.SampleRate)
	if len(loop) > 0 {
		p, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(loop), int64(len(loop))))
		if err != nil {
			return nil, fmt.Errorf("music player: %w", err)
		}
		s.music = p
	}
	return s, nil
}

// Update is an ECS system draining the cue queue once per frame.
func (s *Sink) Update(e *ecs.ECS) {
	cues := systems.DrainSFX(e.World)
	if s.music != nil {
		paused := false
		if sess := systems.Session(e); sess != nil {
			paused = sess.Paused || sess.GameOver
		}
		s.updateMusic(paused)
	}
	if s.mute {
		return
	}
	for _, id := range cues {
		s.play(id)
	}
}

func (s *Sink) updateMusic(paused bool) {
	switch {
	case s.mute || paused:
		if s.music.IsPlaying() {
			s.music.Pause()
		}
	case !s.music.IsPlaying():
		s.music.SetVolume(s.volume)
		s.music.Play()
	}
}

func (s *Sink) play(id cfg.SoundID) {
	p, ok := s.players[id]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.SetVolume(s.volume * cfg.Audio.DefaultSFXVol)
	p.Play()
}
