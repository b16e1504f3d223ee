package ring

import "math"

// Named placement angles in screen coordinates (y grows downward).
const (
	Right  = 0.0
	Bottom = 90.0
	Left   = 180.0
	Top    = 270.0
)

// SectionEpsilon is trimmed from the clockwise edge of every section so a
// shared boundary angle belongs to the next slot only.
const SectionEpsilon = 1e-3

// HighlightNone is the highlighted angle meaning "nothing highlighted".
var HighlightNone = math.Inf(-1)

// IsNone reports whether angle is the no-highlight sentinel. NaN counts too.
func IsNone(angle float64) bool {
	return math.IsInf(angle, -1) || math.IsNaN(angle)
}

// Normalize maps any finite angle in degrees to [0, 360).
func Normalize(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// d+360 can round up to exactly 360 for tiny negative inputs
	if d >= 360 {
		d = 0
	}
	return d
}

// AngleOf returns the normalized angle of point (x, y) seen from (cx, cy).
func AngleOf(cx, cy, x, y float64) float64 {
	return Normalize(math.Atan2(y-cy, x-cx) * 180 / math.Pi)
}

// PointAt returns the point at radius r and angle degrees from (cx, cy).
func PointAt(cx, cy, r, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
