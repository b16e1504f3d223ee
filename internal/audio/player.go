// Package audio plays short chimes for view events and exposes the level
// of what is currently sounding.
package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	SampleRate    = beep.SampleRate(44100)
	chimeDuration = 400 * time.Millisecond
	tapRingSize   = 4096
	levelWindow   = 1024
)

// Player plays chimes through the speaker. A disabled player does nothing.
type Player struct {
	enabled  bool
	volume   float64
	initDone bool
	tap      *levelTap
	log      zerolog.Logger
}

func NewPlayer(enabled bool, volume float64, log zerolog.Logger) *Player {
	return &Player{
		enabled: enabled,
		volume:  volume,
		log:     log.With().Str("component", "audio").Logger(),
	}
}

// Init opens the speaker. Audio is disabled when that fails.
func (p *Player) Init() error {
	if !p.enabled || p.initDone {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		p.enabled = false
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initDone = true
	return nil
}

func (p *Player) Enabled() bool { return p.enabled && p.initDone }

// Play stops any chime still sounding and plays a new one at freq.
func (p *Player) Play(freq float64) {
	if !p.Enabled() {
		return
	}
	t := newLevelTap(Chime(SampleRate, freq, chimeDuration, p.volume), tapRingSize)

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	p.tap = t
	speaker.Play(beep.Seq(t, beep.Callback(t.reset)))
	p.log.Debug().Float64("freq", freq).Msg("chime")
}

// Level returns the RMS level of the chime currently sounding, in [0,1].
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	return p.tap.Level(levelWindow)
}

func (p *Player) Close() {
	if !p.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
