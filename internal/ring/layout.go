// Package ring places marker slots evenly around a circle and resolves
// which slot owns a given angle.
package ring

import (
	"errors"
	"math"
)

// ErrNegativeCount is returned by Layout for a negative marker count.
var ErrNegativeCount = errors.New("ring: negative marker count")

// Config holds the inputs of one layout pass.
type Config struct {
	MarkerCount     int
	StartAngle      float64
	CenterX         float64
	CenterY         float64
	PlacementRadius float64
	MarkerRadius    float64
}

// Interval returns the angular width of each slot's section.
func (c Config) Interval() float64 {
	if c.MarkerCount <= 0 {
		return 0
	}
	return 360 / float64(c.MarkerCount)
}

// Layout places cfg.MarkerCount slots clockwise from cfg.StartAngle.
// Slots in prev are reused by index so their animation state survives;
// slots past the new count are canceled and dropped.
func Layout(cfg Config, prev []*Slot) ([]*Slot, error) {
	if cfg.MarkerCount < 0 {
		return nil, ErrNegativeCount
	}
	if cfg.MarkerCount < len(prev) {
		for _, s := range prev[cfg.MarkerCount:] {
			s.CancelBounce()
		}
	}
	if cfg.MarkerCount == 0 {
		return []*Slot{}, nil
	}

	interval := cfg.Interval()
	slots := make([]*Slot, cfg.MarkerCount)
	for position := range slots {
		var s *Slot
		if position < len(prev) && prev[position] != nil {
			s = prev[position]
		} else {
			s = &Slot{}
		}

		angle := Normalize(cfg.StartAngle + float64(position)*interval)
		rad := angle * math.Pi / 180

		s.Position = position
		s.Angle = angle
		s.SectionMin = Normalize(angle - interval/2)
		s.SectionMax = Normalize(angle + interval/2 - SectionEpsilon)
		s.X = cfg.CenterX + cfg.PlacementRadius*math.Cos(rad)
		s.Y = cfg.CenterY + cfg.PlacementRadius*math.Sin(rad)
		s.Radius = cfg.MarkerRadius
		slots[position] = s
	}
	return slots, nil
}
