package view

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/iburimskiy/circular-view/internal/ring"
)

// Observer is notified by an Adapter when its data changes.
type Observer interface {
	// OnChanged means the marker count or layout inputs changed.
	OnChanged()
	// OnInvalidated means only the look of markers changed.
	OnInvalidated()
}

// Adapter supplies the markers of a CircularView.
type Adapter interface {
	Count() int
	// SetupMarker customizes the slot at position after every layout pass.
	SetupMarker(position int, s *ring.Slot)
	Register(o Observer)
	Unregister(o Observer)
}

// Observable keeps the observer list of an adapter. Embed it to get
// Register, Unregister and the Notify methods.
type Observable struct {
	observers []Observer
}

func (o *Observable) Register(obs Observer) {
	if obs == nil || slices.Contains(o.observers, obs) {
		return
	}
	o.observers = append(o.observers, obs)
}

func (o *Observable) Unregister(obs Observer) {
	o.observers = slices.DeleteFunc(o.observers, func(x Observer) bool { return x == obs })
}

func (o *Observable) NotifyChanged() {
	for _, obs := range o.observers {
		obs.OnChanged()
	}
}

func (o *Observable) NotifyInvalidated() {
	for _, obs := range o.observers {
		obs.OnInvalidated()
	}
}

// SimpleAdapter serves a fixed number of markers and an optional setup hook.
type SimpleAdapter struct {
	Observable
	count int
	Setup func(position int, s *ring.Slot)
}

// NewSimpleAdapter returns an adapter with count markers.
func NewSimpleAdapter(count int) (*SimpleAdapter, error) {
	a := &SimpleAdapter{}
	if err := a.SetCount(count); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *SimpleAdapter) Count() int { return a.count }

// SetCount changes the marker count and notifies observers.
func (a *SimpleAdapter) SetCount(n int) error {
	if n < 0 {
		return fmt.Errorf("set marker count %d: %w", n, ring.ErrNegativeCount)
	}
	if n == a.count {
		return nil
	}
	a.count = n
	a.NotifyChanged()
	return nil
}

func (a *SimpleAdapter) SetupMarker(position int, s *ring.Slot) {
	if a.Setup != nil {
		a.Setup(position, s)
	}
}

// LabelAdapter serves one marker per label.
type LabelAdapter struct {
	Observable
	labels []string
}

func NewLabelAdapter(labels []string) *LabelAdapter {
	return &LabelAdapter{labels: slices.Clone(labels)}
}

func (a *LabelAdapter) Count() int { return len(a.labels) }

func (a *LabelAdapter) Labels() []string { return slices.Clone(a.labels) }

// SetLabels replaces the labels and notifies observers.
func (a *LabelAdapter) SetLabels(labels []string) {
	a.labels = slices.Clone(labels)
	a.NotifyChanged()
}

func (a *LabelAdapter) SetupMarker(position int, s *ring.Slot) {
	if position < len(a.labels) {
		s.Label = a.labels[position]
	}
}

// ReadLabels reads one label per line. Blank lines and lines starting
// with '#' are skipped.
func ReadLabels(r io.Reader) ([]string, error) {
	var labels []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		labels = append(labels, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}
