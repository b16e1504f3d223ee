package view

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/circular-view/internal/anim"
	"github.com/iburimskiy/circular-view/internal/ring"
)

const frame = 16 * time.Millisecond

type fakeHost struct {
	invalidations int
	layouts       int
}

func (h *fakeHost) Invalidate()    { h.invalidations++ }
func (h *fakeHost) RequestLayout() { h.layouts++ }

func testOptions() Options {
	opts := DefaultOptions()
	opts.SweepInterp = anim.Linear
	opts.BounceDuration = 100 * time.Millisecond
	return opts
}

func newTestView(t *testing.T, count int, opts Options) (*CircularView, *fakeHost, *SimpleAdapter) {
	t.Helper()
	host := &fakeHost{}
	v := New(host, zerolog.Nop(), opts)
	a, err := NewSimpleAdapter(count)
	require.NoError(t, err)
	v.SetAdapter(a)
	v.Measure(800, 600)
	require.NoError(t, v.Layout())
	return v, host, a
}

func run(v *CircularView, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		v.Update(frame)
	}
}

func TestMeasure(t *testing.T) {
	v := New(nil, zerolog.Nop(), DefaultOptions())
	v.Measure(800, 600)

	cx, cy := v.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
	// round(600*0.9) = 540; (540 - 160 - 40) / 2
	assert.Equal(t, 170.0, v.HubRadius())
	assert.Equal(t, 230.0, v.PlacementRadius())
	assert.True(t, v.NeedsLayout())
}

func TestLayout_UsesAdapter(t *testing.T) {
	v, _, a := newTestView(t, 4, testOptions())
	require.Len(t, v.Slots(), 4)
	assert.False(t, v.NeedsLayout())

	cx, cy := v.Center()
	s := v.Slot(0)
	assert.InDelta(t, cx+v.PlacementRadius(), s.X, 1e-9)
	assert.InDelta(t, cy, s.Y, 1e-9)
	assert.Equal(t, 40.0, s.Radius)

	require.NoError(t, a.SetCount(6))
	assert.True(t, v.NeedsLayout())
	require.NoError(t, v.Layout())
	assert.Len(t, v.Slots(), 6)
}

func TestLayout_NilAdapter(t *testing.T) {
	v := New(nil, zerolog.Nop(), DefaultOptions())
	v.Measure(100, 100)
	require.NoError(t, v.Layout())
	assert.Empty(t, v.Slots())
	assert.Equal(t, -1, v.HighlightedPosition())
}

type negativeAdapter struct{ Observable }

func (negativeAdapter) Count() int                   { return -2 }
func (negativeAdapter) SetupMarker(int, *ring.Slot) {}

func TestLayout_NegativeCountFails(t *testing.T) {
	v := New(nil, zerolog.Nop(), DefaultOptions())
	v.SetAdapter(&negativeAdapter{})
	err := v.Layout()
	require.Error(t, err)
	assert.ErrorIs(t, err, ring.ErrNegativeCount)
}

func TestLayout_SetupMarkerAndLabels(t *testing.T) {
	v := New(nil, zerolog.Nop(), DefaultOptions())
	v.SetAdapter(NewLabelAdapter([]string{"a", "b", "c"}))
	v.Measure(400, 400)
	require.NoError(t, v.Layout())

	require.Len(t, v.Slots(), 3)
	assert.Equal(t, "b", v.Slot(1).Label)

	reused := v.Slot(1)
	a, err := NewSimpleAdapter(3)
	require.NoError(t, err)
	v.SetAdapter(a)
	require.NoError(t, v.Layout())
	assert.Same(t, reused, v.Slot(1))
	assert.Empty(t, v.Slot(1).Label)
}

func TestLayout_ReappliesHighlight(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	v.SetHighlightedAngle(100)
	require.Equal(t, 1, v.HighlightedPosition())

	v.SetStartAngle(90)
	require.NoError(t, v.Layout())
	// slot 0 now sits at 90 degrees
	assert.Equal(t, 0, v.HighlightedPosition())
	assert.True(t, v.Slot(0).Highlighted)
	assert.False(t, v.Slot(1).Highlighted)
}

func TestSetHighlightedAngle(t *testing.T) {
	v, host, _ := newTestView(t, 4, testOptions())
	before := host.invalidations

	v.SetHighlightedAngle(91)
	assert.Equal(t, 1, v.HighlightedPosition())
	assert.Same(t, v.Slot(1), v.HighlightedSlot())
	assert.Greater(t, host.invalidations, before)

	v.SetHighlightedAngle(ring.HighlightNone)
	assert.Equal(t, -1, v.HighlightedPosition())
	assert.Nil(t, v.HighlightedSlot())
}

func TestStillHighlightBounce(t *testing.T) {
	opts := testOptions()
	v, _, _ := newTestView(t, 4, opts)
	v.SetHighlightedAngle(0)
	assert.False(t, v.Slot(0).IsAnimating())

	v.SetAnimateMarkersOnStillHighlight(true)
	v.SetHighlightedAngle(90)
	s := v.Slot(1)
	require.True(t, s.IsAnimating())
	assert.True(t, s.AnimateWhenHighlighted)

	// keeps bouncing while highlighted
	run(v, time.Second)
	assert.True(t, s.IsAnimating())

	v.SetHighlightedAngle(180)
	run(v, 300*time.Millisecond)
	assert.False(t, s.IsAnimating())
	assert.Zero(t, s.Lift())
}

func TestSweep_CompletesAndNotifies(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	var ended []int
	v.SetListener(Listener{SweepEnd: func(p int) { ended = append(ended, p) }})

	h := v.AnimateHighlightedAngle(0, 180, 500*time.Millisecond, false)
	require.NotNil(t, h)
	assert.True(t, v.IsSweeping())

	_, _, ok := v.SweepPointer()
	assert.True(t, ok)

	last := v.HighlightedAngle()
	for v.IsSweeping() {
		v.Update(frame)
		assert.GreaterOrEqual(t, v.HighlightedAngle(), last)
		last = v.HighlightedAngle()
	}

	assert.Equal(t, anim.Finished, h.State())
	assert.Equal(t, 180.0, v.HighlightedAngle())
	assert.Equal(t, []int{2}, ended)
	_, _, ok = v.SweepPointer()
	assert.False(t, ok)
}

func TestSweep_NoNotificationWithoutHighlight(t *testing.T) {
	v, _, _ := newTestView(t, 0, testOptions())
	called := false
	v.SetListener(Listener{SweepEnd: func(int) { called = true }})

	v.AnimateHighlightedAngle(0, 90, 100*time.Millisecond, true)
	run(v, 200*time.Millisecond)
	assert.False(t, v.IsSweeping())
	assert.False(t, called)
}

func TestSweep_RestartCancelsPrevious(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	var ended []int
	v.SetListener(Listener{SweepEnd: func(p int) { ended = append(ended, p) }})

	a := v.AnimateHighlightedAngle(0, 90, time.Second, false)
	run(v, 400*time.Millisecond)
	require.True(t, a.Running())

	b := v.AnimateHighlightedAngle(180, 270, 500*time.Millisecond, false)
	assert.Equal(t, anim.Canceled, a.State())

	for v.IsSweeping() {
		v.Update(frame)
		assert.GreaterOrEqual(t, v.HighlightedAngle(), 180.0)
		assert.LessOrEqual(t, v.HighlightedAngle(), 270.0)
	}
	run(v, time.Second)

	assert.Equal(t, anim.Finished, b.State())
	assert.Equal(t, anim.Canceled, a.State())
	assert.Equal(t, []int{3}, ended)
}

func TestSweep_CancelSuppressesNotification(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	called := false
	v.SetListener(Listener{SweepEnd: func(int) { called = true }})

	h := v.AnimateHighlightedAngle(0, 270, 300*time.Millisecond, false)
	run(v, 100*time.Millisecond)
	angle := v.HighlightedAngle()
	v.CancelSweep()

	run(v, time.Second)
	assert.False(t, called)
	assert.Equal(t, anim.Canceled, h.State())
	assert.Equal(t, angle, v.HighlightedAngle())
}

func TestSweep_AnimatesMarkers(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	v.AnimateHighlightedAngle(0, 100, time.Second, true)
	assert.True(t, v.Slot(0).IsAnimating())

	run(v, 600*time.Millisecond)
	assert.True(t, v.Slot(1).IsAnimating())
	assert.False(t, v.Slot(2).IsAnimating())
}

func TestSweep_WithoutMarkerAnimation(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	v.AnimateHighlightedAngle(0, 100, time.Second, false)
	run(v, 600*time.Millisecond)
	for _, s := range v.Slots() {
		assert.False(t, s.IsAnimating())
	}
}

func TestSweep_DurationEdgeCases(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	ended := -1
	v.SetListener(Listener{SweepEnd: func(p int) { ended = p }})

	assert.Nil(t, v.AnimateHighlightedAngle(0, 90, -time.Second, false))
	assert.False(t, v.IsSweeping())

	h := v.AnimateHighlightedAngle(0, 90, 0, false)
	require.NotNil(t, h)
	v.Update(frame)
	assert.Equal(t, anim.Finished, h.State())
	assert.Equal(t, 1, ended)
}

func TestSweep_WrapsAround(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	seen := map[int]bool{}
	v.AnimateHighlightedAngle(300, 400, 400*time.Millisecond, false)
	for v.IsSweeping() {
		v.Update(frame)
		seen[v.HighlightedPosition()] = true
	}
	assert.True(t, seen[3])
	assert.True(t, seen[0])
	assert.Equal(t, 0, v.HighlightedPosition())
}

func TestDrawOrder(t *testing.T) {
	opts := testOptions()
	opts.DrawHighlightedMarkerOnTop = true
	v, _, _ := newTestView(t, 4, opts)

	v.SetHighlightedAngle(90)
	order := v.DrawOrder()
	require.Len(t, order, 4)
	assert.Same(t, v.Slot(1), order[3])

	v.SetDrawHighlightedMarkerOnTop(false)
	order = v.DrawOrder()
	assert.Same(t, v.Slot(3), order[3])

	v.Slot(2).Hidden = true
	assert.Len(t, v.DrawOrder(), 3)
}

func TestClicks(t *testing.T) {
	v, _, _ := newTestView(t, 4, testOptions())
	var markers []int
	centers := 0
	v.SetListener(Listener{
		MarkerClick: func(p int) { markers = append(markers, p) },
		CenterClick: func() { centers++ },
	})

	s := v.Slot(2)
	require.True(t, v.Press(s.X, s.Y))
	require.True(t, v.Release(s.X+1, s.Y))
	assert.Equal(t, []int{2}, markers)

	cx, cy := v.Center()
	require.True(t, v.Press(cx, cy))
	require.True(t, v.Release(cx, cy))
	assert.Equal(t, 1, centers)

	// press on the hub, release on a marker
	require.True(t, v.Press(cx, cy))
	assert.False(t, v.Release(s.X, s.Y))
	assert.Equal(t, 1, centers)
	assert.Len(t, markers, 1)

	assert.False(t, v.Press(0, 0))
	assert.False(t, v.Release(0, 0))
}

func TestClicks_FollowBounce(t *testing.T) {
	opts := testOptions()
	opts.BounceOffset = 30
	opts.MarkerRadius = 10
	v, _, _ := newTestView(t, 4, opts)
	v.SetAnimateMarkersOnStillHighlight(true)
	v.SetHighlightedAngle(0)
	run(v, 100*time.Millisecond)

	s := v.Slot(0)
	require.Greater(t, s.Lift(), 20.0)
	assert.True(t, v.Press(s.X, s.DrawY()))
	assert.False(t, v.Press(s.X, s.Y+5))
}

func TestObserverContract(t *testing.T) {
	v, host, a := newTestView(t, 3, testOptions())
	layouts, invalidations := host.layouts, host.invalidations

	a.NotifyInvalidated()
	assert.Equal(t, invalidations+1, host.invalidations)
	assert.False(t, v.NeedsLayout())

	a.NotifyChanged()
	assert.Equal(t, layouts+1, host.layouts)
	assert.True(t, v.NeedsLayout())
}

func TestSetMarkerRadius(t *testing.T) {
	v, _, _ := newTestView(t, 3, testOptions())
	hub := v.HubRadius()
	v.SetMarkerRadius(50)
	assert.True(t, v.NeedsLayout())
	assert.Equal(t, hub-20, v.HubRadius())
	require.NoError(t, v.Layout())
	assert.Equal(t, 50.0, v.Slot(0).Radius)
}

func TestClose(t *testing.T) {
	v, host, a := newTestView(t, 4, testOptions())
	v.SetAnimateMarkersOnStillHighlight(true)
	v.SetHighlightedAngle(0)
	h := v.AnimateHighlightedAngle(0, 180, time.Second, true)
	require.True(t, v.Slot(0).IsAnimating())

	v.Close()
	assert.Equal(t, anim.Canceled, h.State())
	for _, s := range v.Slots() {
		assert.False(t, s.IsAnimating())
		assert.False(t, s.Highlighted)
	}

	layouts := host.layouts
	a.NotifyChanged()
	assert.Equal(t, layouts, host.layouts)
}

func TestText(t *testing.T) {
	v := New(nil, zerolog.Nop(), DefaultOptions())
	v.SetText("menu")
	assert.Equal(t, "menu", v.Text())
}

func TestReadLabels(t *testing.T) {
	labels, err := ReadLabels(strings.NewReader("one\n\n# comment\n  two  \nthree\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, labels)
}

func TestSimpleAdapter(t *testing.T) {
	_, err := NewSimpleAdapter(-1)
	assert.ErrorIs(t, err, ring.ErrNegativeCount)

	a, err := NewSimpleAdapter(2)
	require.NoError(t, err)
	host := &fakeHost{}
	v := New(host, zerolog.Nop(), DefaultOptions())
	v.SetAdapter(a)
	layouts := host.layouts

	require.NoError(t, a.SetCount(2))
	assert.Equal(t, layouts, host.layouts, "unchanged count does not notify")

	assert.Error(t, a.SetCount(-3))
	assert.Equal(t, 2, a.Count())
}
