package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circular-view/internal/ring"
	"github.com/iburimskiy/circular-view/internal/view"
)

// Drawable is anything the game paints onto the screen.
type Drawable interface {
	Draw(screen *ebiten.Image)
}

// Cell size of the ebitenutil debug font.
const debugGlyphW, debugGlyphH = 6, 16

type hubShape struct {
	v *view.CircularView
	// level pulses the hub with the chime currently sounding
	level float64
}

func (h hubShape) Draw(screen *ebiten.Image) {
	cx, cy := h.v.Center()
	r := h.v.HubRadius()
	if r <= 0 {
		return
	}
	glow := clamp01(h.level * 4)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r*(1+0.05*glow)),
		color.RGBA{R: 40, G: uint8(50 + 80*glow), B: uint8(80 + 100*glow), A: 255}, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, true)

	if text := h.v.Text(); text != "" {
		ebitenutil.DebugPrintAt(screen, text, int(cx)-len(text)*debugGlyphW/2, int(cy)-debugGlyphH/2)
	}
}

type markerShape struct {
	s *ring.Slot
}

func (m markerShape) Draw(screen *ebiten.Image) {
	s := m.s
	x, y := float32(s.X), float32(s.DrawY())
	r := float32(s.Radius)
	vector.DrawFilledCircle(screen, x, y, r, markerColor(s.Angle, s.Highlighted), true)
	if s.Highlighted {
		vector.StrokeCircle(screen, x, y, r+3, 3, color.RGBA{R: 255, G: 255, B: 255, A: 220}, true)
	}
	if s.Label != "" {
		ebitenutil.DebugPrintAt(screen, s.Label, int(s.X)-len(s.Label)*debugGlyphW/2, int(s.DrawY())-debugGlyphH/2)
	}
}

// sweepLine is the pointer drawn from the hub while a sweep runs.
type sweepLine struct {
	v *view.CircularView
}

func (l sweepLine) Draw(screen *ebiten.Image) {
	x, y, ok := l.v.SweepPointer()
	if !ok {
		return
	}
	cx, cy := l.v.Center()
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(x), float32(y), 3, color.RGBA{R: 230, G: 60, B: 60, A: 255}, true)
}
