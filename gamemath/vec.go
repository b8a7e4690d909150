package gamemath

import "github.com/yohamta/donburi/features/math"

// Vec2 is a planar vector. Y is depth on the floor band.
type Vec2 = math.Vec2

func V(x, y float64) Vec2 { return math.NewVec2(x, y) }
