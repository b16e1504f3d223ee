// Command ringterm previews the circular view in a terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/circular-view/internal/config"
	"github.com/iburimskiy/circular-view/internal/logging"
	"github.com/iburimskiy/circular-view/internal/ring"
	"github.com/iburimskiy/circular-view/internal/view"
)

const frame = 16 * time.Millisecond // ~60 FPS

// Terminal cells are about twice as tall as wide, so the view works in a
// space where one row spans two units.
const rowScale = 2

type app struct {
	screen  tcell.Screen
	view    *view.CircularView
	markers *view.SimpleAdapter
	cfg     *config.Config
	log     zerolog.Logger

	dirty    bool
	mouseBtn bool
	status   string
}

// Invalidate implements view.Host.
func (a *app) Invalidate() { a.dirty = true }

// RequestLayout implements view.Host; the loop lays out before drawing.
func (a *app) RequestLayout() { a.dirty = true }

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	markers, err := view.NewSimpleAdapter(cfg.Ring.MarkerCount)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{screen: screen, markers: markers, cfg: cfg, log: log, dirty: true}

	opts := cfg.ViewOptions()
	opts.MarkerRadius = 1.5
	opts.Padding = 2
	opts.BounceOffset = 2
	a.view = view.New(a, log, opts)
	a.view.SetAdapter(markers)
	a.view.SetListener(view.Listener{
		MarkerClick: func(p int) { a.status = fmt.Sprintf("clicked marker %d", p) },
		CenterClick: a.startSweep,
		SweepEnd:    func(p int) { a.status = fmt.Sprintf("sweep ended on marker %d", p) },
	})
	a.resize()
	return a, nil
}

func (a *app) resize() {
	w, h := a.screen.Size()
	a.view.Measure(w, h*rowScale)
}

func (a *app) startSweep() {
	from := a.view.HighlightedAngle()
	if ring.IsNone(from) {
		from = a.view.Options().StartAngle
	}
	a.view.AnimateHighlightedAngle(from, from+360, a.cfg.Animation.SweepDuration, true)
}

// step moves the highlight to the neighbouring marker.
func (a *app) step(dir int) {
	n := a.markers.Count()
	if n == 0 {
		return
	}
	a.view.CancelSweep()
	p := a.view.HighlightedPosition()
	if p < 0 {
		p = 0
	} else {
		p = (p + dir + n) % n
	}
	if s := a.view.Slot(p); s != nil {
		a.view.SetHighlightedAngle(s.Angle)
	}
}

func (a *app) fail(err error) {
	if err != nil {
		a.status = "error: " + err.Error()
		a.log.Error().Err(err).Msg("ringterm")
		a.dirty = true
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.step(-1)
		case tcell.KeyRight:
			a.step(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.startSweep()
			case 'c':
				a.view.CancelSweep()
			case '+', '=':
				a.fail(a.markers.SetCount(a.markers.Count() + 1))
			case '-':
				a.fail(a.markers.SetCount(a.markers.Count() - 1))
			case 'a':
				a.view.SetAnimateMarkersOnStillHighlight(!a.view.Options().AnimateMarkersOnStillHighlight)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := float64(col), float64(row*rowScale)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.mouseBtn:
			a.view.Press(x, y)
		case !down && a.mouseBtn:
			a.view.Release(x, y)
		}
		a.mouseBtn = down

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			if a.view.NeedsLayout() {
				a.fail(a.view.Layout())
			}
			a.view.Update(frame)
			if a.dirty {
				a.draw()
				a.dirty = false
			}
		}
	}
}

func (a *app) cleanup() {
	a.view.Close()
	a.screen.Fini()
}

func main() {
	configDir := pflag.StringP("config", "c", ".", "directory containing "+config.FileName)
	logPath := pflag.String("log", "", "write JSON logs to this file")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringterm: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ringterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, cfg.LogLevel, false)

	a, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
