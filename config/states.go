package config

// StateID identifies the single active combat state of a character.
type StateID int

const (
	StateIdle StateID = iota
	StateWalk
	StateJump
	StateAttack
	StateStun
	StateKnockback
	StateDown
)

var stateNames = map[StateID]string{
	StateIdle:      "IDLE",
	StateWalk:      "WALK",
	StateJump:      "JUMP",
	StateAttack:    "ATTACK",
	StateStun:      "STUN",
	StateKnockback: "KNOCKBACK",
	StateDown:      "DOWN",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Locked reports whether the state blocks intents (hit reactions and prone).
func (s StateID) Locked() bool {
	return s == StateStun || s == StateKnockback || s == StateDown
}

// AttackKind selects which variant of the ATTACK state is running.
type AttackKind int

const (
	AttackCombo AttackKind = iota
	AttackSpecial
	AttackPunch
	AttackDive
)

func (k AttackKind) String() string {
	switch k {
	case AttackCombo:
		return "combo"
	case AttackSpecial:
		return "special"
	case AttackPunch:
		return "punch"
	case AttackDive:
		return "dive"
	}
	return "unknown"
}

// MovesetID selects what attack and special triggers do for a character.
type MovesetID int

const (
	// MovesetBrawler chains a three hit combo and has the special and dive.
	MovesetBrawler MovesetID = iota
	// MovesetThug throws a single punch at the player.
	MovesetThug
)
