package ring

// Resolve highlights the first visible slot whose section holds angle and
// clears every other slot. It returns the highlighted position, or -1.
func Resolve(angle float64, slots []*Slot) int {
	highlighted := -1
	none := IsNone(angle)
	if !none {
		angle = Normalize(angle)
	}
	for i, s := range slots {
		hit := !none && highlighted < 0 && !s.Hidden && s.InSection(angle)
		s.Highlighted = hit
		if hit {
			highlighted = i
		}
	}
	return highlighted
}
