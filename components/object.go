package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase body of a character.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase grid shared by all character bodies.
var Space = donburi.NewComponentType[resolv.Space]()
