package input

import (
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// DoubleTapMs is the window for a second tap that starts running.
const DoubleTapMs = 450

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionAttack
	ActionSpecial
	ActionJump
	ActionPause
	ActionRestart
	ActionCount
)

// Bindings maps actions to keys.
var Bindings = map[Action][]ebiten.Key{
	ActionLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	ActionRight:   {ebiten.KeyRight, ebiten.KeyD},
	ActionUp:      {ebiten.KeyUp, ebiten.KeyW},
	ActionDown:    {ebiten.KeyDown, ebiten.KeyS},
	ActionAttack:  {ebiten.KeyJ, ebiten.KeyZ},
	ActionSpecial: {ebiten.KeyK, ebiten.KeyX},
	ActionJump:    {ebiten.KeySpace},
	ActionPause:   {ebiten.KeyEscape, ebiten.KeyP},
	ActionRestart: {ebiten.KeyR},
}

// Keyboard polls the keys once per frame into a signal read by the player's
// HumanInput.
type Keyboard struct {
	Signal *systems.InputSignal
	run    systems.RunDetector
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Signal: &systems.InputSignal{},
		run:    systems.RunDetector{WindowMs: DoubleTapMs},
	}
}

func pressed(a Action) bool {
	for _, k := range Bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func justPressed(a Action) bool {
	for _, k := range Bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func axis(neg, pos Action) float64 {
	v := 0.0
	if pressed(neg) {
		v--
	}
	if pressed(pos) {
		v++
	}
	return v
}

// Update is an ECS system. It runs before the simulation step and handles
// pause and restart requests itself.
func (k *Keyboard) Update(e *ecs.ECS) {
	s := k.Signal
	s.Move = gamemath.V(axis(ActionLeft, ActionRight), axis(ActionUp, ActionDown))
	s.Running = k.run.Update(gamemath.Sign(s.Move.X), systems.NowMs(e.World))

	// edges accumulate until the player's controller consumes them
	s.Attack = s.Attack || justPressed(ActionAttack)
	s.Special = s.Special || justPressed(ActionSpecial)
	s.Jump = s.Jump || justPressed(ActionJump)

	if justPressed(ActionPause) {
		systems.TogglePause(e)
	}
	if justPressed(ActionRestart) {
		systems.RequestRestart(e)
	}

	if sess := systems.Session(e); sess != nil && (sess.Paused || sess.GameOver) {
		s.Attack, s.Special, s.Jump = false, false, false
	}
}
