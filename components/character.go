package components

import (
	"github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places a character on the floor band. Z is the jump axis and
// is independent of Position.
type TransformData struct {
	Position gamemath.Vec2
	Z        float64
	VZ       float64
}

// Grounded reports whether the character stands on the floor.
func (t *TransformData) Grounded() bool {
	return t.Z <= 0
}

// MotionData holds planar velocity and the decaying knockback vector.
type MotionData struct {
	Velocity  gamemath.Vec2
	Knockback gamemath.Vec2
}

// FighterData is the per-character combat bookkeeping that outlives a single
// state.
type FighterData struct {
	Seq           int64 // spawn order
	Moveset       config.MovesetID
	Facing        int // config.DirectionLeft or config.DirectionRight
	ComboIndex    int
	Recovery      int
	Jumps         int
	LastAttackMs  int64 // -1 until the first attack
	ComboHits     int
	LastHitMs     int64 // -1 until the first landed hit
	Running       bool
	JumpAnimTimer int
}

// FacingRight is the presentation view of Facing.
func (f *FighterData) FacingRight() bool {
	return f.Facing >= 0
}

// LocomotionData are the steering parameters of one character.
type LocomotionData struct {
	Accel                float64
	MaxSpeed             float64
	RunAccelMult         float64
	RunSpeedMult         float64
	RootedWhileAttacking bool
}

var Transform = donburi.NewComponentType[TransformData]()
var Motion = donburi.NewComponentType[MotionData]()
var Fighter = donburi.NewComponentType[FighterData]()
var Locomotion = donburi.NewComponentType[LocomotionData]()
