package gamemath

// ApplyFriction damps a velocity and snaps it to zero below stopSpeed.
func ApplyFriction(v Vec2, friction, stopSpeed float64) Vec2 {
	v = v.MulScalar(friction)
	return SnapStop(v, stopSpeed)
}

// SnapStop zeroes a velocity whose speed is below stopSpeed.
func SnapStop(v Vec2, stopSpeed float64) Vec2 {
	if v.Magnitude() < stopSpeed {
		return Vec2{}
	}
	return v
}

// ClampSpeed rescales v so its length does not exceed max.
func ClampSpeed(v Vec2, max float64) Vec2 {
	if v.Magnitude() > max {
		return v.Normalized().MulScalar(max)
	}
	return v
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
