package tetsuo

// DefaultRotationStep is the per-frame rotation of every pivot, in radians.
const DefaultRotationStep = 0.01

// Animator spins the pivots by a fixed step per frame. Speed follows the
// display refresh rate.
type Animator struct {
	Pivots []*Pivot
	Delta  float32

	frames uint64
}

// NewAnimator returns an animator for the composition's pivots.
func NewAnimator(c *Composition, delta float32) *Animator {
	if delta <= 0 {
		delta = DefaultRotationStep
	}
	return &Animator{Pivots: c.Pivots[:], Delta: delta}
}

// Step advances one frame.
func (a *Animator) Step() {
	for _, p := range a.Pivots {
		p.Rotate(a.Delta)
	}
	a.frames++
}

// Frames returns the number of steps taken.
func (a *Animator) Frames() uint64 {
	return a.frames
}
