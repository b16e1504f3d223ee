package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/circular-view/internal/view"
)

// openLabelsDialog lets the user pick a labels file and switches the
// view to one marker per label.
func (g *Game) openLabelsDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Marker Labels"),
		zenity.FileFilters{{
			Name:     "Labels",
			Patterns: []string{"*.txt", "*.labels"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadLabels(filename)
}

func (g *Game) loadLabels(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	labels, err := view.ReadLabels(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	g.labels = view.NewLabelAdapter(labels)
	g.view.SetAdapter(g.labels)
	g.log.Info().Str("file", path).Int("markers", len(labels)).Msg("labels loaded")
	return nil
}

// promptMarkerCount asks for a new marker count for the plain adapter.
func (g *Game) promptMarkerCount() error {
	text, err := zenity.Entry("Number of markers:",
		zenity.Title("Marker Count"),
		zenity.EntryText(strconv.Itoa(g.view.Adapter().Count())),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err == nil {
		err = g.setMarkerCount(n)
	}
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Marker Count"))
		return err
	}
	return nil
}

func (g *Game) setMarkerCount(n int) error {
	if err := g.markers.SetCount(n); err != nil {
		return err
	}
	if g.view.Adapter() != g.markers {
		g.view.SetAdapter(g.markers)
	}
	return nil
}
