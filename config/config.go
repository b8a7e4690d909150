package config

import "image/color"

// ScreenConfig describes the logical playfield.
type ScreenConfig struct {
	Width       int
	Height      int
	FloorStartY float64
	TPS         int
}

// PhysicsConfig holds the shared integration constants.
type PhysicsConfig struct {
	Gravity        float64
	Friction       float64
	StopSpeed      float64 // planar speed below which velocity snaps to zero
	JumpPower      float64
	DivePower      float64
	MaxJumps       int
	DepthMargin    float64 // distance kept from the floor band edges
	KnockbackDecay float64
}

// LocomotionConfig contains the steering parameters of one kind of character.
type LocomotionConfig struct {
	Accel                float64
	MaxSpeed             float64
	RunAccelMult         float64
	RunSpeedMult         float64
	RootedWhileAttacking bool
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health     int
	SpawnX     float64
	SpawnY     float64
	Locomotion LocomotionConfig
}

// EnemyConfig contains enemy AI and punch values
type EnemyConfig struct {
	Health     int
	Locomotion LocomotionConfig

	OffsetRerollChance float64
	OffsetRangeX       int
	OffsetRangeY       int
	ArriveDistance     float64
	SteerJitter        float64

	AttackRange    float64
	AttackBandY    float64
	AttackPrep     int
	AttackCooldown int
	PunchDuration  int
	PunchReach     float64
	PunchDamage    int
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	ComboLength     int
	ComboWindowMs   int64
	ComboHitTimeout int64 // ms between hits that keep the hit counter alive
	ComboDisplay    int   // ticks the combo counter stays on screen
	ComboOffsetY    float64

	FrameTicks       int // ticks per animation frame
	SwingFrame       int
	ActiveFrame      int
	FallbackDuration int // attack duration when no animation data exists
	RecoveryDelay    int
	FinisherRecovery int
	HitDamage        int
	FinisherDamage   int
	HitRangeX        float64
	HitRangeY        float64
	HitRangeYMult    float64
	BackTolerance    float64

	SpecialCost     int
	SpecialDamage   int
	SpecialRadius   float64
	SpecialDuration int

	DiveDamage int
	DiveRadius float64

	FlashTicks     int
	StunTicks      int
	StunNudge      float64
	KnockbackTicks int
	KnockbackLift  float64
	KnockbackSpeed float64
	LethalLift     float64
	LethalSpeed    float64
	LethalScatter  float64
	FinisherLift   float64
	DownTicks      int
}

// SeparationConfig tunes the soft push between actors.
type SeparationConfig struct {
	Radius      float64
	Strength    float64
	MinDistance float64
	BodySize    float64
	CellSize    int
}

// WaveConfig paces the encounter director.
type WaveConfig struct {
	FirstTriggerX  float64
	WorldEndX      float64
	MinEnemies     int
	MaxEnemies     int
	SpawnInterval  int
	NextDistances  []float64
	SpawnRightX    float64 // relative to the camera
	SpawnLeftX     float64
	SpawnMinY      int
	SpawnMaxY      int
	Formation      [][2]float64
	ArenaMargin    float64
	FreeRoamMargin float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64
	AnchorRatio     float64 // fraction of the screen width the player is held at
}

// DeathConfig controls the death blink sequence.
type DeathConfig struct {
	BlinkInterval int
	BlinkDuration int
}

// DisplayConfig holds presentation mapping values exposed by the core.
type DisplayConfig struct {
	ScaleBase      float64
	ScaleRange     float64
	AttackPriority int
	HurtPriority   int
	JumpFrameTicks float64
	TargetRange    float64
	GoBlinkMs      int64
	ComboPopTicks  int
	ComboFadeTicks int
	ComboPopScale  float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Screen ScreenConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Separation SeparationConfig
var Wave WaveConfig
var Camera CameraConfig
var Death DeathConfig
var Display DisplayConfig

// Palette used by the placeholder renderer.
var (
	SkyTop      = color.RGBA{R: 15, G: 15, B: 30, A: 255}
	SkyBottom   = color.RGBA{R: 45, G: 45, B: 65, A: 255}
	FloorTop    = color.RGBA{R: 30, G: 30, B: 35, A: 255}
	FloorBottom = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	City        = color.RGBA{R: 25, G: 25, B: 40, A: 255}
	White       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	Black       = color.RGBA{R: 10, G: 10, B: 12, A: 255}
	Red         = color.RGBA{R: 230, G: 60, B: 70, A: 255}
	Blue        = color.RGBA{R: 60, G: 130, B: 255, A: 255}
	Green       = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	Yellow      = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Shadow      = color.RGBA{R: 0, G: 0, B: 0, A: 80}
	Overlay     = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	Screen = ScreenConfig{
		Width:       960,
		Height:      540,
		FloorStartY: 340,
		TPS:         60,
	}
	C = &Config{
		Width:  Screen.Width,
		Height: Screen.Height,
	}

	Physics = PhysicsConfig{
		Gravity:        0.5,
		Friction:       0.85,
		StopSpeed:      0.1,
		JumpPower:      13,
		DivePower:      -18,
		MaxJumps:       2,
		DepthMargin:    20,
		KnockbackDecay: 0.95,
	}

	Player = PlayerConfig{
		Health: 100,
		SpawnX: 200,
		SpawnY: 480,
		Locomotion: LocomotionConfig{
			Accel:                0.6,
			MaxSpeed:             4.0,
			RunAccelMult:         1.8,
			RunSpeedMult:         1.6,
			RootedWhileAttacking: true,
		},
	}

	Enemy = EnemyConfig{
		Health: 100,
		Locomotion: LocomotionConfig{
			Accel:        0.6 * 0.4,
			MaxSpeed:     4.0 * 0.75,
			RunAccelMult: 1,
			RunSpeedMult: 1,
		},

		OffsetRerollChance: 0.01,
		OffsetRangeX:       150,
		OffsetRangeY:       40,
		ArriveDistance:     20,
		SteerJitter:        0.2,

		AttackRange:    90,
		AttackBandY:    30,
		AttackPrep:     20,
		AttackCooldown: 45,
		PunchDuration:  14,
		PunchReach:     80,
		PunchDamage:    5,
	}

	Combat = CombatConfig{
		ComboLength:     3,
		ComboWindowMs:   800,
		ComboHitTimeout: 1000,
		ComboDisplay:    60,
		ComboOffsetY:    250,

		FrameTicks:       5,
		SwingFrame:       1,
		ActiveFrame:      2,
		FallbackDuration: 14,
		RecoveryDelay:    2,
		FinisherRecovery: 40,
		HitDamage:        10,
		FinisherDamage:   35,
		HitRangeX:        225,
		HitRangeY:        80,
		HitRangeYMult:    1.3,
		BackTolerance:    15,

		SpecialCost:     15,
		SpecialDamage:   30,
		SpecialRadius:   130,
		SpecialDuration: 25,

		DiveDamage: 15,
		DiveRadius: 100,

		FlashTicks:     2,
		StunTicks:      25,
		StunNudge:      15,
		KnockbackTicks: 30,
		KnockbackLift:  12,
		KnockbackSpeed: 10,
		LethalLift:     10,
		LethalSpeed:    12,
		LethalScatter:  6,
		FinisherLift:   12,
		DownTicks:      90,
	}

	Separation = SeparationConfig{
		Radius:      40,
		Strength:    0.05,
		MinDistance: 0.1,
		BodySize:    40,
		CellSize:    40,
	}

	Wave = WaveConfig{
		FirstTriggerX: 800,
		WorldEndX:     20000,
		MinEnemies:    2,
		MaxEnemies:    4,
		SpawnInterval: 240,
		NextDistances: []float64{500, 750, 1000},
		SpawnRightX:   float64(Screen.Width) + 100,
		SpawnLeftX:    -100,
		SpawnMinY:     380,
		SpawnMaxY:     500,
		Formation: [][2]float64{
			{75, -15},
			{-75, 15},
			{0, 45},
		},
		ArenaMargin:    30,
		FreeRoamMargin: 50,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		AnchorRatio:     0.5,
	}

	Death = DeathConfig{
		BlinkInterval: 5,
		BlinkDuration: 60,
	}

	Display = DisplayConfig{
		ScaleBase:      0.8,
		ScaleRange:     0.4,
		AttackPriority: 50,
		HurtPriority:   -50,
		JumpFrameTicks: 5.5,
		TargetRange:    450,
		GoBlinkMs:      600,
		ComboPopTicks:  15,
		ComboFadeTicks: 15,
		ComboPopScale:  1.5,
	}
}

// MinDepth and MaxDepth bound the playable Y band.
func MinDepth() float64 { return Screen.FloorStartY + Physics.DepthMargin }

func MaxDepth() float64 { return float64(Screen.Height) - Physics.DepthMargin }

// TicksToMs converts a tick count into simulated milliseconds.
func TicksToMs(ticks int64) int64 {
	return ticks * 1000 / int64(Screen.TPS)
}
