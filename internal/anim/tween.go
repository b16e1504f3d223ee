package anim

import (
	"math"
	"time"
)

// Interpolator maps linear progress t in [0,1] to eased progress.
type Interpolator func(t float64) float64

// Linear is the identity interpolator.
func Linear(t float64) float64 { return t }

// EaseInOut accelerates from rest and decelerates into the end value.
func EaseInOut(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Tween interpolates From to To over Duration as it is advanced.
type Tween struct {
	From, To float64
	Duration time.Duration
	Interp   Interpolator

	elapsed time.Duration
}

// Advance moves the tween forward by dt and returns the current value and
// whether the end has been reached. A non-positive Duration ends at once.
func (tw *Tween) Advance(dt time.Duration) (float64, bool) {
	if dt > 0 {
		tw.elapsed += dt
	}
	if tw.Duration <= 0 {
		return tw.To, true
	}
	return tw.Value(), tw.elapsed >= tw.Duration
}

// Value returns the value at the current elapsed time.
func (tw *Tween) Value() float64 {
	return tw.At(tw.Progress())
}

// At returns the value at linear progress t.
func (tw *Tween) At(t float64) float64 {
	interp := tw.Interp
	if interp == nil {
		interp = Linear
	}
	return tw.From + (tw.To-tw.From)*interp(clamp01(t))
}

// Progress returns linear progress in [0,1].
func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return clamp01(float64(tw.elapsed) / float64(tw.Duration))
}

// Reset rewinds the tween to its start.
func (tw *Tween) Reset() { tw.elapsed = 0 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
