package components

import (
	"github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// AttackData only exists while a character is in the ATTACK state.
type AttackData struct {
	Kind         config.AttackKind
	SwingDone    bool
	HitConnected bool
}

type StateData struct {
	Current config.StateID
	Timer   int
	Attack  *AttackData
}

// Set switches to a non-attack state.
func (s *StateData) Set(state config.StateID, timer int) {
	s.Current = state
	s.Timer = timer
	if state != config.StateAttack {
		s.Attack = nil
	}
}

// SetAttack enters the ATTACK state with fresh swing flags.
func (s *StateData) SetAttack(kind config.AttackKind, timer int) {
	s.Current = config.StateAttack
	s.Timer = timer
	s.Attack = &AttackData{Kind: kind}
}

// Is reports whether the current state is one of states.
func (s *StateData) Is(states ...config.StateID) bool {
	for _, st := range states {
		if s.Current == st {
			return true
		}
	}
	return false
}

// Attacking reports whether an attack of the given kind is running.
func (s *StateData) Attacking(kind config.AttackKind) bool {
	return s.Current == config.StateAttack && s.Attack != nil && s.Attack.Kind == kind
}

var State = donburi.NewComponentType[StateData]()
