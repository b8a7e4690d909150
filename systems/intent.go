package systems

import (
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// InputSignal is written by the keyboard adapter each frame. Move holds -1, 0
// or 1 per axis. The trigger fields are edges and are consumed when read.
type InputSignal struct {
	Move    gamemath.Vec2
	Running bool
	Attack  bool
	Special bool
	Jump    bool
}

// HumanInput turns an InputSignal into intents.
type HumanInput struct {
	Signal *InputSignal
}

func (h *HumanInput) Intent(_ donburi.World, _ *donburi.Entry) components.IntentData {
	if h == nil || h.Signal == nil {
		return components.IntentData{}
	}
	s := h.Signal
	in := components.IntentData{
		Move:    s.Move.Normalized(),
		Face:    gamemath.Sign(s.Move.X),
		Attack:  s.Attack,
		Special: s.Special,
		Jump:    s.Jump,
		Running: s.Running,
	}
	h.DiscardTriggers()
	return in
}

// DiscardTriggers drops pending edges without producing an intent.
func (h *HumanInput) DiscardTriggers() {
	if h == nil || h.Signal == nil {
		return
	}
	h.Signal.Attack, h.Signal.Special, h.Signal.Jump = false, false, false
}

// Idle never wants anything.
type Idle struct{}

func (Idle) Intent(donburi.World, *donburi.Entry) components.IntentData {
	return components.IntentData{}
}

// Scripted replays a fixed list of intents, one per call, then idles.
type Scripted struct {
	Steps []components.IntentData
	next  int
}

func (s *Scripted) Intent(donburi.World, *donburi.Entry) components.IntentData {
	if s.next >= len(s.Steps) {
		return components.IntentData{}
	}
	in := s.Steps[s.next]
	s.next++
	return in
}

// RunDetector turns a double tap of a horizontal direction into running.
// Running lasts until the direction is released.
type RunDetector struct {
	WindowMs int64

	lastDir   int
	lastTapMs int64
	held      int
	running   bool
}

// Update feeds the held horizontal direction at nowMs and reports whether
// the character is running.
func (r *RunDetector) Update(dir int, nowMs int64) bool {
	if dir == 0 {
		r.held = 0
		r.running = false
		return false
	}
	if dir != r.held {
		// fresh press
		if dir == r.lastDir && nowMs-r.lastTapMs <= r.WindowMs {
			r.running = true
		} else {
			r.running = false
		}
		r.lastDir = dir
		r.lastTapMs = nowMs
		r.held = dir
	}
	return r.running
}
