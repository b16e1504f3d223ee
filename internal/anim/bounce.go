package anim

import "time"

// DefaultPhaseDuration is the length of each half of a bounce.
const DefaultPhaseDuration = 650 * time.Millisecond

// DefaultOffset is how far a bouncing marker rises.
const DefaultOffset = 25.0

// Bounce lifts a marker by Offset over PhaseDuration and lowers it back
// over the same duration. When the sequence ends and Repeat reports true,
// the sequence starts over.
type Bounce struct {
	Offset        float64
	PhaseDuration time.Duration
	Interp        Interpolator
	Repeat        func() bool

	handle  *Handle
	elapsed time.Duration
	lift    float64
}

// Start begins a new sequence. A sequence still in flight is ended first.
func (b *Bounce) Start() {
	if b.Running() {
		b.End()
	}
	b.handle = NewHandle()
	b.elapsed = 0
	b.lift = 0
}

// End jumps a running sequence to its final resting state.
func (b *Bounce) End() {
	if b.handle.Finish() {
		b.lift = 0
	}
}

// Cancel stops the sequence immediately and drops the lift.
func (b *Bounce) Cancel() {
	b.handle.Cancel()
	b.lift = 0
}

func (b *Bounce) Running() bool { return b.handle.Running() }

// Started reports whether a sequence was ever started.
func (b *Bounce) Started() bool { return b.handle != nil }

func (b *Bounce) State() State { return b.handle.State() }

// Lift returns the current upward displacement.
func (b *Bounce) Lift() float64 { return b.lift }

// Advance moves the bounce forward by dt and returns the lift.
func (b *Bounce) Advance(dt time.Duration) float64 {
	if !b.Running() {
		return b.lift
	}
	if b.PhaseDuration <= 0 {
		b.End()
		return b.lift
	}
	if dt > 0 {
		b.elapsed += dt
	}

	total := 2 * b.PhaseDuration
	for b.elapsed >= total {
		if b.Repeat != nil && b.Repeat() {
			b.elapsed -= total
			continue
		}
		b.End()
		return b.lift
	}

	interp := b.Interp
	if interp == nil {
		interp = EaseInOut
	}
	if b.elapsed < b.PhaseDuration {
		b.lift = b.Offset * interp(float64(b.elapsed)/float64(b.PhaseDuration))
	} else {
		down := float64(b.elapsed-b.PhaseDuration) / float64(b.PhaseDuration)
		b.lift = b.Offset * (1 - interp(down))
	}
	return b.lift
}
