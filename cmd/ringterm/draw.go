package main

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/circular-view/internal/ring"
)

var (
	hubStyle       = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	markerStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	highlightStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true).Reverse(true)
	pointerStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func cell(x, y float64) (int, int) {
	return int(math.Round(x)), int(math.Round(y / rowScale))
}

func (a *app) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		a.screen.SetContent(col+i, row, r, nil, style)
	}
}

func markerGlyph(s *ring.Slot) rune {
	if s.Label != "" {
		return []rune(s.Label)[0]
	}
	return rune(strconv.FormatInt(int64(s.Position%36), 36)[0])
}

func (a *app) draw() {
	a.screen.Clear()
	cx, cy := a.view.Center()

	if r := a.view.HubRadius(); r > 0 {
		for deg := 0.0; deg < 360; deg += 2 {
			col, row := cell(ring.PointAt(cx, cy, r, deg))
			a.screen.SetContent(col, row, '·', nil, hubStyle)
		}
		if text := a.view.Text(); text != "" {
			col, row := cell(cx, cy)
			a.drawText(col-len([]rune(text))/2, row, text, hubStyle)
		}
	}

	if x, y, ok := a.view.SweepPointer(); ok {
		const steps = 32
		for i := 1; i < steps; i++ {
			t := float64(i) / steps
			col, row := cell(cx+(x-cx)*t, cy+(y-cy)*t)
			a.screen.SetContent(col, row, '*', nil, pointerStyle)
		}
	}

	for _, s := range a.view.DrawOrder() {
		style := markerStyle
		if s.Highlighted {
			style = highlightStyle
		}
		col, row := cell(s.X, s.DrawY())
		a.screen.SetContent(col, row, markerGlyph(s), nil, style)
	}

	_, h := a.screen.Size()
	a.drawText(0, 0, "←/→: step  space/click hub: sweep  c: cancel  +/-: markers  a: bounce  q: quit", statusStyle)
	if a.status != "" {
		a.drawText(0, h-1, a.status, statusStyle)
	}
	a.screen.Show()
}
