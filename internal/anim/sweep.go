package anim

import "time"

// Sweep animates the highlighted angle from Start to End.
type Sweep struct {
	Start, End     float64
	Duration       time.Duration
	AnimateMarkers bool

	tween  Tween
	handle *Handle
}

// NewSweep returns a running sweep. A nil interp uses EaseInOut.
func NewSweep(start, end float64, d time.Duration, animateMarkers bool, interp Interpolator) *Sweep {
	if interp == nil {
		interp = EaseInOut
	}
	return &Sweep{
		Start:          start,
		End:            end,
		Duration:       d,
		AnimateMarkers: animateMarkers,
		tween:          Tween{From: start, To: end, Duration: d, Interp: interp},
		handle:         NewHandle(),
	}
}

func (s *Sweep) Handle() *Handle { return s.handle }

func (s *Sweep) Running() bool { return s != nil && s.handle.Running() }

// Angle returns the current, unnormalized angle.
func (s *Sweep) Angle() float64 {
	if s.handle.State() == Finished {
		return s.End
	}
	return s.tween.Value()
}

// Advance moves the sweep forward by dt and returns the angle for this
// frame and whether the sweep just finished. A sweep that is not running
// does not move.
func (s *Sweep) Advance(dt time.Duration) (float64, bool) {
	if !s.Running() {
		return s.Angle(), false
	}
	angle, done := s.tween.Advance(dt)
	if done {
		s.handle.Finish()
		return s.End, true
	}
	return angle, false
}

// Cancel stops the sweep; it reports whether the sweep was running.
func (s *Sweep) Cancel() bool {
	if s == nil {
		return false
	}
	return s.handle.Cancel()
}
