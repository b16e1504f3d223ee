package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := 0; i < n; i++ {
			samples[i] = [2]float64{v, v}
			pos++
		}
		return n, true
	})
}

func drain(s beep.Streamer, chunk int) int {
	buf := make([][2]float64, chunk)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestLevelTap_RecordsPlayedSamples(t *testing.T) {
	tap := newLevelTap(constant(0.5, 300), 128)
	assert.Zero(t, tap.Level(64))

	assert.Equal(t, 300, drain(tap, 100))
	assert.InDelta(t, 0.5, tap.Level(64), 1e-9)
	assert.Len(t, tap.snapshot(1000), 128)
	assert.NoError(t, tap.Err())

	tap.reset()
	assert.Zero(t, tap.Level(64))
}

func TestLevelTap_SnapshotOrder(t *testing.T) {
	pos := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{float64(pos), 0}
			pos++
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 4)
	buf := make([][2]float64, 3)
	tap.Stream(buf)
	tap.Stream(buf)

	got := tap.snapshot(4)
	require.Len(t, got, 4)
	for i, s := range got {
		assert.Equal(t, float64(2+i), s[0])
	}
}

func TestChime(t *testing.T) {
	const volume = 0.4
	c := Chime(SampleRate, 440, 100*time.Millisecond, volume)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := c.Stream(buf)
		for _, s := range buf[:n] {
			assert.Equal(t, s[0], s[1])
			peak = math.Max(peak, math.Abs(s[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, SampleRate.N(100*time.Millisecond), total)
	assert.LessOrEqual(t, peak, volume)
	assert.Greater(t, peak, volume/2)
}

func TestMarkerFrequency(t *testing.T) {
	assert.Equal(t, 440.0, MarkerFrequency(0))
	assert.Equal(t, 440.0, MarkerFrequency(-3))
	assert.InDelta(t, 880, MarkerFrequency(5), 1e-9)
	assert.NotEqual(t, MarkerFrequency(1), MarkerFrequency(2))
}

func TestPlayer_Disabled(t *testing.T) {
	p := NewPlayer(false, 0.3, zerolog.Nop())
	require.NoError(t, p.Init())
	assert.False(t, p.Enabled())
	p.Play(440)
	assert.Zero(t, p.Level())
	p.Close()
}
