package ring

import (
	"fmt"
	"time"

	"github.com/iburimskiy/circular-view/internal/anim"
)

// Slot is one marker position on the ring.
type Slot struct {
	Position int

	// X, Y is the resting center; a bounce draws the slot Lift() above it.
	X, Y   float64
	Radius float64

	// Angle is the placement angle, SectionMin..SectionMax the angular
	// interval this slot owns. All three are normalized.
	Angle      float64
	SectionMin float64
	SectionMax float64

	Highlighted bool

	// AnimateWhenHighlighted keeps the bounce repeating while the slot
	// stays highlighted.
	AnimateWhenHighlighted bool

	// Hidden slots are skipped by highlight resolution and hit testing.
	Hidden bool
	Label  string

	bounce anim.Bounce
}

// InSection reports whether the normalized angle a falls in the slot's
// section. A section with SectionMin > SectionMax wraps across 0.
func (s *Slot) InSection(a float64) bool {
	if s.SectionMin <= s.SectionMax {
		return a >= s.SectionMin && a <= s.SectionMax
	}
	return a >= s.SectionMin || a <= s.SectionMax
}

// Lift returns the current bounce displacement.
func (s *Slot) Lift() float64 { return s.bounce.Lift() }

// DrawY is the y coordinate the slot is drawn at.
func (s *Slot) DrawY() float64 { return s.Y - s.bounce.Lift() }

// IsAnimating reports whether a bounce is in progress.
func (s *Slot) IsAnimating() bool { return s.bounce.Running() }

// StartBounce starts a bounce sequence, ending any sequence in flight.
func (s *Slot) StartBounce(offset float64, phase time.Duration) {
	s.bounce.Offset = offset
	s.bounce.PhaseDuration = phase
	s.bounce.Repeat = s.repeatBounce
	s.bounce.Start()
}

// CancelBounce stops the bounce and clears the highlight so it cannot
// repeat. A slot that never bounced is left untouched.
func (s *Slot) CancelBounce() {
	if !s.bounce.Started() {
		return
	}
	s.Highlighted = false
	s.bounce.Cancel()
}

// Advance moves the slot's bounce forward by dt and reports whether the
// slot needs redrawing.
func (s *Slot) Advance(dt time.Duration) bool {
	if !s.bounce.Running() {
		return false
	}
	s.bounce.Advance(dt)
	return true
}

// Contains reports whether (x, y) hits the drawn slot.
func (s *Slot) Contains(x, y float64) bool {
	if s.Hidden {
		return false
	}
	dx, dy := x-s.X, y-s.DrawY()
	return dx*dx+dy*dy <= s.Radius*s.Radius
}

func (s *Slot) repeatBounce() bool {
	return s.Highlighted && s.AnimateWhenHighlighted
}

func (s *Slot) String() string {
	return fmt.Sprintf("slot{%d angle=%.3f section=[%.3f,%.3f] at=(%.1f,%.1f)}",
		s.Position, s.Angle, s.SectionMin, s.SectionMax, s.X, s.Y)
}
