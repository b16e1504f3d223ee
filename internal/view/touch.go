package view

type targetKind int

const (
	targetNone targetKind = iota
	targetMarker
	targetCenter
)

type target struct {
	kind     targetKind
	position int
}

// hit finds what lies under (x, y). Markers win over the hub.
func (v *CircularView) hit(x, y float64) target {
	for i, s := range v.slots {
		if s.Contains(x, y) {
			return target{kind: targetMarker, position: i}
		}
	}
	dx, dy := x-v.centerX, y-v.centerY
	if v.hubRadius > 0 && dx*dx+dy*dy <= v.hubRadius*v.hubRadius {
		return target{kind: targetCenter}
	}
	return target{}
}

// Press records a pointer press and reports whether it landed on a marker
// or the hub.
func (v *CircularView) Press(x, y float64) bool {
	v.pressed = v.hit(x, y)
	return v.pressed.kind != targetNone
}

// Release completes a press. When it lands on the object that was
// pressed, the matching click callback fires and true is returned.
func (v *CircularView) Release(x, y float64) bool {
	pressed := v.pressed
	v.pressed = target{}
	if pressed.kind == targetNone || v.hit(x, y) != pressed {
		return false
	}
	switch pressed.kind {
	case targetMarker:
		v.log.Debug().Int("position", pressed.position).Msg("marker click")
		if v.listener.MarkerClick != nil {
			v.listener.MarkerClick(pressed.position)
		}
	case targetCenter:
		v.log.Debug().Msg("center click")
		if v.listener.CenterClick != nil {
			v.listener.CenterClick()
		}
	}
	return true
}
