// Package game hosts a circular view in an ebiten window.
package game

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/circular-view/internal/audio"
	"github.com/iburimskiy/circular-view/internal/config"
	"github.com/iburimskiy/circular-view/internal/ring"
	"github.com/iburimskiy/circular-view/internal/view"
)

const startAngleStep = 15.0

// Game implements ebiten.Game and view.Host.
type Game struct {
	cfg   *config.Config
	log   zerolog.Logger
	view  *view.CircularView
	audio *audio.Player

	markers *view.SimpleAdapter
	labels  *view.LabelAdapter

	time    float64
	redraws int

	// state
	status  string
	lastErr error
}

// New builds the game from cfg. Audio failures only disable sound.
func New(cfg *config.Config, log zerolog.Logger) (*Game, error) {
	markers, err := view.NewSimpleAdapter(cfg.Ring.MarkerCount)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		markers: markers,
		audio:   audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.Volume, log),
	}
	g.view = view.New(g, log, cfg.ViewOptions())
	g.view.SetAdapter(markers)
	g.view.SetListener(view.Listener{
		MarkerClick: g.onMarkerClick,
		CenterClick: g.onCenterClick,
		SweepEnd:    g.onSweepEnd,
	})

	if err := g.audio.Init(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	return g, nil
}

// Invalidate implements view.Host. ebiten redraws every frame anyway, so
// this only counts requests for the HUD.
func (g *Game) Invalidate() { g.redraws++ }

// RequestLayout implements view.Host; Update lays out before drawing.
func (g *Game) RequestLayout() {}

func (g *Game) onMarkerClick(position int) {
	g.status = "marker " + g.markerName(position)
	g.audio.Play(audio.MarkerFrequency(position))
	g.view.SetHighlightedAngle(g.view.Slot(position).Angle)
}

func (g *Game) onCenterClick() {
	g.startSweep()
}

func (g *Game) onSweepEnd(position int) {
	g.status = "sweep ended on " + g.markerName(position)
	g.log.Info().Int("position", position).Msg("sweep ended")
	g.audio.Play(audio.MarkerFrequency(position))
}

func (g *Game) markerName(position int) string {
	if s := g.view.Slot(position); s != nil && s.Label != "" {
		return s.Label
	}
	return "#" + strconv.Itoa(position)
}

// startSweep sweeps one full turn from the current highlight.
func (g *Game) startSweep() {
	from := g.view.HighlightedAngle()
	if ring.IsNone(from) {
		from = g.cfg.Ring.StartAngle
	}
	g.view.AnimateHighlightedAngle(from, from+360, g.cfg.Animation.SweepDuration, true)
}

func (g *Game) Update() error {
	if g.view.NeedsLayout() {
		if err := g.view.Layout(); err != nil {
			g.fail(err)
		}
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.time += dt.Seconds()
	g.view.Update(dt)
	return nil
}

func (g *Game) handleInput() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.view.Press(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.view.Release(x, y)
	}

	// Hovering the ring highlights the marker under the pointer's angle.
	if !g.view.IsSweeping() {
		cx, cy := g.view.Center()
		if math.Hypot(x-cx, y-cy) > g.view.HubRadius() {
			angle := ring.AngleOf(cx, cy, x, y)
			if angle != g.view.HighlightedAngle() {
				g.view.SetHighlightedAngle(angle)
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startSweep()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.view.CancelSweep()
		g.status = "sweep canceled"
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.fail(g.setMarkerCount(g.view.Adapter().Count() + 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.fail(g.setMarkerCount(g.view.Adapter().Count() - 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.view.SetStartAngle(g.view.Options().StartAngle - startAngleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.view.SetStartAngle(g.view.Options().StartAngle + startAngleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.view.SetAnimateMarkersOnStillHighlight(!g.view.Options().AnimateMarkersOnStillHighlight)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.view.SetDrawHighlightedMarkerOnTop(!g.view.Options().DrawHighlightedMarkerOnTop)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.fail(g.openLabelsDialog())
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.fail(g.promptMarkerCount())
	}
	return nil
}

func (g *Game) fail(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Error().Err(err).Msg("circular view")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	shapes := []Drawable{hubShape{v: g.view, level: g.audio.Level()}, sweepLine{v: g.view}}
	for _, s := range g.view.DrawOrder() {
		shapes = append(shapes, markerShape{s: s})
	}
	for _, d := range shapes {
		d.Draw(screen)
	}

	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		r := uint8(10 + 10*math.Sin(g.time*0.5+ratio*math.Pi))
		gv := uint8(12 + 8*math.Cos(g.time*0.3+ratio*math.Pi))
		b := uint8(20 + 15*math.Sin(g.time*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	help := "Hover: highlight  Click hub/Space: sweep  C: cancel  Up/Down: count  Left/Right: rotate  A: bounce  T: on top  O: labels  N: count  Q: quit"
	ebitenutil.DebugPrintAt(screen, help, 12, 12)

	status := "markers " + strconv.Itoa(g.view.Adapter().Count())
	if p := g.view.HighlightedPosition(); p >= 0 {
		status += " | highlighted " + g.markerName(p)
	}
	if g.status != "" {
		status += " | " + g.status
	}
	status += " | redraws " + strconv.Itoa(g.redraws)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.cfg.Window.Height-24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Measure(g.cfg.Window.Width, g.cfg.Window.Height)
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops animations and sound.
func (g *Game) Close() {
	g.view.Close()
	g.audio.Close()
}
