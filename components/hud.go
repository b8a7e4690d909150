package components

import (
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// HUDData is the transient on-screen feedback owned by the simulation.
type HUDData struct {
	ComboTimer int
	ComboCount int
	ComboPos   gamemath.Vec2 // world coordinates
	ComboScale float64
	ComboAlpha float64

	fadeTicks int
	popTween  *gween.Tween
	fadeTween *gween.Tween

	GoVisible bool
	GoScale   float64
	goPhase   int64 // last blink period that rang the bell
	goTween   *gween.Tween

	Target    donburi.Entity // closest enemy within range
	HasTarget bool
}

// ArmCombo shows count at pos for duration ticks with a pop then a fade.
func (h *HUDData) ArmCombo(count int, pos gamemath.Vec2, duration, popTicks, fadeTicks int, popScale float64) {
	h.ComboCount = count
	h.ComboPos = pos
	h.ComboTimer = duration
	h.ComboScale = popScale
	h.ComboAlpha = 1
	h.fadeTicks = fadeTicks
	h.popTween = gween.New(float32(popScale), 1, float32(popTicks), ease.OutQuad)
	h.fadeTween = nil
}

// StepCombo advances the combo popup by one tick.
func (h *HUDData) StepCombo() {
	if h.ComboTimer <= 0 {
		return
	}
	h.ComboTimer--
	if h.popTween != nil {
		s, done := h.popTween.Update(1)
		h.ComboScale = float64(s)
		if done {
			h.popTween = nil
		}
	}
	if h.fadeTween == nil && h.ComboTimer < h.fadeTicks {
		h.fadeTween = gween.New(1, 0, float32(h.fadeTicks), ease.Linear)
	}
	if h.fadeTween != nil {
		a, _ := h.fadeTween.Update(1)
		h.ComboAlpha = float64(a)
	}
	if h.ComboTimer == 0 {
		h.ComboAlpha = 0
	}
}

// StepGo advances the GO indicator. period is the blink half cycle in
// simulated ms. It returns true when the indicator just turned visible.
func (h *HUDData) StepGo(nowMs, period int64, show bool, pulseTicks int) bool {
	if !show {
		h.GoVisible = false
		h.goTween = nil
		return false
	}
	phase := nowMs / period
	h.GoVisible = phase%2 == 0
	rang := false
	if h.GoVisible && phase != h.goPhase {
		h.goPhase = phase
		rang = true
		h.goTween = gween.New(1.15, 1, float32(pulseTicks), ease.OutQuad)
	}
	h.GoScale = 1
	if h.goTween != nil {
		s, done := h.goTween.Update(1)
		h.GoScale = float64(s)
		if done {
			h.goTween = nil
		}
	}
	return rang
}

// ClearFeedback hides every HUD element.
func (h *HUDData) ClearFeedback() {
	*h = HUDData{goPhase: -1}
}

var HUD = donburi.NewComponentType[HUDData]()
