package components

import "github.com/yohamta/donburi"

// FlashData drives the white hit flash.
type FlashData struct {
	Duration int
}

var Flash = donburi.NewComponentType[FlashData]()
