package animations

// Animation is a frame cursor over one clip. The cursor itself is unbounded
// so callers can compare it against a clip length; Frame maps it into the
// clip for drawing.
type Animation struct {
	First            int
	Last             int
	Step             int // how many indices do we move per frame
	SpeedInTps       int // how many ticks before next frame
	ticks            int
	cursor           int
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the cursor by one tick.
func (a *Animation) Update() {
	a.ticks++
	if a.ticks >= a.SpeedInTps {
		a.ticks = 0
		a.cursor++
	}
}

// Cursor returns the number of frames played since the last restart.
func (a *Animation) Cursor() int {
	return a.cursor
}

// Len returns the clip length in frames.
func (a *Animation) Len() int {
	if a.Step <= 0 || a.Last < a.First {
		return 0
	}
	return (a.Last-a.First)/a.Step + 1
}

// Finished reports whether the final frame has been reached.
func (a *Animation) Finished() bool {
	return a.cursor >= a.Len()-1
}

// Frame returns the sheet index to draw.
func (a *Animation) Frame() int {
	n := a.Len()
	if n == 0 {
		return a.First
	}
	i := a.cursor
	if i >= n {
		if a.FreezeOnComplete {
			i = n - 1
		} else {
			i %= n
		}
	}
	return a.First + i*a.Step
}

// Restart rewinds the cursor to the first frame.
func (a *Animation) Restart() {
	a.cursor = 0
	a.ticks = 0
}

// Reset switches the cursor to another clip and rewinds it.
func (a *Animation) Reset(first, last, step, speed int, freeze bool) {
	a.First = first
	a.Last = last
	a.Step = step
	a.SpeedInTps = speed
	a.FreezeOnComplete = freeze
	a.Restart()
}

func NewAnimation(first, last, step, speed int) *Animation {
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
	}
}
