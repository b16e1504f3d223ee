// Package view is the circular view widget: hub measurement, marker layout
// driven by an Adapter, angle highlighting, the highlight sweep and the
// marker bounces, click dispatch and the redraw/relayout contract with the
// host that renders it.
//
// A CircularView is not safe for concurrent use. Every method is meant to
// be called from the host's update loop.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/circular-view/internal/anim"
	"github.com/iburimskiy/circular-view/internal/ring"
)

// Host is the rendering side of a CircularView.
type Host interface {
	// Invalidate asks for a redraw.
	Invalidate()
	// RequestLayout asks for Layout to run before the next draw.
	RequestLayout()
}

// Listener receives the view's events. Nil fields are skipped.
type Listener struct {
	MarkerClick func(position int)
	CenterClick func()
	SweepEnd    func(position int)
}

// Options configures a CircularView.
type Options struct {
	StartAngle   float64
	MarkerRadius float64
	// Padding separates the hub from the markers.
	Padding float64
	// CircleWeight is the share of the short side the whole ring uses.
	CircleWeight float64

	BounceOffset   float64
	BounceDuration time.Duration
	SweepInterp    anim.Interpolator

	AnimateMarkersOnStillHighlight bool
	DrawHighlightedMarkerOnTop     bool
	Text                           string
}

// DefaultOptions mirrors the stock widget.
func DefaultOptions() Options {
	return Options{
		StartAngle:     ring.Right,
		MarkerRadius:   40,
		Padding:        20,
		CircleWeight:   0.9,
		BounceOffset:   anim.DefaultOffset,
		BounceDuration: anim.DefaultPhaseDuration,
	}
}

type CircularView struct {
	opts     Options
	host     Host
	log      zerolog.Logger
	listener Listener

	adapter  Adapter
	observer *adapterObserver

	width, height    float64
	centerX, centerY float64
	hubRadius        float64

	slots       []*ring.Slot
	needsLayout bool

	highlightedAngle float64
	highlighted      int
	sweep            *anim.Sweep

	pressed target
}

// New returns a view with no adapter. A nil host is allowed.
func New(host Host, log zerolog.Logger, opts Options) *CircularView {
	if host == nil {
		host = nopHost{}
	}
	v := &CircularView{
		opts:             opts,
		host:             host,
		log:              log.With().Str("component", "circularview").Logger(),
		highlightedAngle: ring.HighlightNone,
		highlighted:      -1,
	}
	v.observer = &adapterObserver{v: v}
	return v
}

func (v *CircularView) Options() Options { return v.opts }

func (v *CircularView) SetListener(l Listener) { v.listener = l }

// SetAdapter swaps the marker source. A nil adapter lays out no markers.
func (v *CircularView) SetAdapter(a Adapter) {
	if v.adapter != nil {
		v.adapter.Unregister(v.observer)
	}
	v.adapter = a
	if a != nil {
		a.Register(v.observer)
	}
	v.requestLayout()
	v.invalidate()
}

func (v *CircularView) Adapter() Adapter { return v.adapter }

// Measure sizes the hub for a width x height area centered in it.
func (v *CircularView) Measure(width, height int) {
	w, h := float64(width), float64(height)
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	v.measureHub()
}

func (v *CircularView) measureHub() {
	short := math.Round(math.Min(v.width, v.height) * v.opts.CircleWeight)
	v.hubRadius = math.Max(0, (short-v.opts.MarkerRadius*4-v.opts.Padding*2)/2)
	v.centerX, v.centerY = v.width/2, v.height/2
	v.requestLayout()
}

func (v *CircularView) Center() (float64, float64) { return v.centerX, v.centerY }

func (v *CircularView) HubRadius() float64 { return v.hubRadius }

// PlacementRadius is the distance from the center to every marker center.
func (v *CircularView) PlacementRadius() float64 {
	return v.hubRadius + v.opts.Padding + v.opts.MarkerRadius
}

func (v *CircularView) NeedsLayout() bool { return v.needsLayout }

// Layout places the adapter's markers and re-applies the highlight.
func (v *CircularView) Layout() error {
	count := 0
	if v.adapter != nil {
		count = v.adapter.Count()
	}
	cfg := ring.Config{
		MarkerCount:     count,
		StartAngle:      v.opts.StartAngle,
		CenterX:         v.centerX,
		CenterY:         v.centerY,
		PlacementRadius: v.PlacementRadius(),
		MarkerRadius:    v.opts.MarkerRadius,
	}
	slots, err := ring.Layout(cfg, v.slots)
	if err != nil {
		return fmt.Errorf("circularview: layout %d markers: %w", count, err)
	}
	for i, s := range slots {
		s.AnimateWhenHighlighted = v.opts.AnimateMarkersOnStillHighlight
		// Reused slots may carry a previous adapter's setup.
		s.Label = ""
		s.Hidden = false
		v.adapter.SetupMarker(i, s)
	}
	v.slots = slots
	v.needsLayout = false
	v.log.Debug().Int("markers", count).Float64("start", cfg.StartAngle).
		Float64("radius", cfg.PlacementRadius).Msg("layout")

	v.resolve()
	return nil
}

// Slots returns the laid-out slots in position order.
func (v *CircularView) Slots() []*ring.Slot { return v.slots }

// Slot returns the slot at position, or nil.
func (v *CircularView) Slot(position int) *ring.Slot {
	if position < 0 || position >= len(v.slots) {
		return nil
	}
	return v.slots[position]
}

// HighlightedAngle returns the raw highlighted angle, possibly HighlightNone.
func (v *CircularView) HighlightedAngle() float64 { return v.highlightedAngle }

// HighlightedPosition returns the highlighted slot position, or -1.
func (v *CircularView) HighlightedPosition() int { return v.highlighted }

func (v *CircularView) HighlightedSlot() *ring.Slot { return v.Slot(v.highlighted) }

// SetHighlightedAngle highlights the slot owning angle. ring.HighlightNone
// clears the highlight.
func (v *CircularView) SetHighlightedAngle(angle float64) {
	v.highlightedAngle = angle
	v.resolve()
}

func (v *CircularView) resolve() {
	v.highlighted = ring.Resolve(v.highlightedAngle, v.slots)
	if s := v.HighlightedSlot(); s != nil && v.wantsBounce() && !s.IsAnimating() {
		s.StartBounce(v.opts.BounceOffset, v.opts.BounceDuration)
	}
	v.invalidate()
}

func (v *CircularView) wantsBounce() bool {
	if v.sweep.Running() {
		return v.sweep.AnimateMarkers
	}
	return v.opts.AnimateMarkersOnStillHighlight
}

// AnimateHighlightedAngle sweeps the highlighted angle from start to end
// over d, canceling any sweep in flight. A negative d is ignored and nil
// is returned.
func (v *CircularView) AnimateHighlightedAngle(start, end float64, d time.Duration, animateMarkers bool) *anim.Handle {
	if d < 0 {
		v.log.Warn().Dur("duration", d).Msg("negative sweep duration ignored")
		return nil
	}
	if v.sweep.Cancel() {
		v.log.Debug().Float64("angle", v.sweep.Angle()).Msg("sweep canceled")
	}
	v.sweep = anim.NewSweep(start, end, d, animateMarkers, v.opts.SweepInterp)
	v.log.Debug().Float64("from", start).Float64("to", end).Dur("duration", d).Msg("sweep started")
	v.SetHighlightedAngle(start)
	return v.sweep.Handle()
}

func (v *CircularView) IsSweeping() bool { return v.sweep.Running() }

// CancelSweep stops the sweep without an end notification.
func (v *CircularView) CancelSweep() {
	if v.sweep.Cancel() {
		v.log.Debug().Float64("angle", v.sweep.Angle()).Msg("sweep canceled")
		v.invalidate()
	}
}

// SweepPointer returns the point on the placement circle at the swept
// angle while a sweep runs.
func (v *CircularView) SweepPointer() (x, y float64, ok bool) {
	if !v.sweep.Running() {
		return 0, 0, false
	}
	x, y = ring.PointAt(v.centerX, v.centerY, v.PlacementRadius(), v.highlightedAngle)
	return x, y, true
}

// Update advances the sweep and every bounce by one frame of length dt.
func (v *CircularView) Update(dt time.Duration) {
	if v.sweep.Running() {
		angle, done := v.sweep.Advance(dt)
		v.SetHighlightedAngle(angle)
		if done {
			v.endSweep()
		}
	}
	for _, s := range v.slots {
		if s.Advance(dt) {
			v.invalidate()
		}
	}
}

func (v *CircularView) endSweep() {
	// The sweep is no longer running, so this resolves as a still highlight.
	v.SetHighlightedAngle(v.sweep.End)
	v.log.Debug().Int("position", v.highlighted).Msg("sweep finished")
	if v.highlighted >= 0 && v.listener.SweepEnd != nil {
		v.listener.SweepEnd(v.highlighted)
	}
}

// DrawOrder returns the visible slots in the order they should be drawn.
func (v *CircularView) DrawOrder() []*ring.Slot {
	order := make([]*ring.Slot, 0, len(v.slots))
	top := v.HighlightedSlot()
	for _, s := range v.slots {
		if s.Hidden || (v.opts.DrawHighlightedMarkerOnTop && s == top) {
			continue
		}
		order = append(order, s)
	}
	if v.opts.DrawHighlightedMarkerOnTop && top != nil && !top.Hidden {
		order = append(order, top)
	}
	return order
}

func (v *CircularView) Text() string { return v.opts.Text }

func (v *CircularView) SetText(text string) {
	v.opts.Text = text
	v.invalidate()
}

func (v *CircularView) SetStartAngle(angle float64) {
	v.opts.StartAngle = angle
	v.requestLayout()
}

func (v *CircularView) SetMarkerRadius(r float64) {
	v.opts.MarkerRadius = r
	v.measureHub()
}

func (v *CircularView) SetAnimateMarkersOnStillHighlight(on bool) {
	v.opts.AnimateMarkersOnStillHighlight = on
	for _, s := range v.slots {
		s.AnimateWhenHighlighted = on
	}
	v.invalidate()
}

func (v *CircularView) SetDrawHighlightedMarkerOnTop(on bool) {
	v.opts.DrawHighlightedMarkerOnTop = on
	v.invalidate()
}

// Close cancels every animation and detaches from the adapter.
func (v *CircularView) Close() {
	v.sweep.Cancel()
	for _, s := range v.slots {
		s.CancelBounce()
	}
	if v.adapter != nil {
		v.adapter.Unregister(v.observer)
	}
}

func (v *CircularView) invalidate() { v.host.Invalidate() }

func (v *CircularView) requestLayout() {
	v.needsLayout = true
	v.host.RequestLayout()
}

type adapterObserver struct {
	v *CircularView
}

func (o *adapterObserver) OnChanged()     { o.v.requestLayout() }
func (o *adapterObserver) OnInvalidated() { o.v.invalidate() }

type nopHost struct{}

func (nopHost) Invalidate()    {}
func (nopHost) RequestLayout() {}
