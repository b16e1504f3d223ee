package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Chime returns a decaying sine tone of the given frequency and length.
func Chime(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	// decays to ~1% by the end
	decay := math.Log(100) / float64(max(total, 1))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := 0; i < n; i++ {
			v := volume * math.Exp(-decay*float64(pos)) * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return n, true
	})
}

// MarkerFrequency spreads marker positions over a pentatonic scale so
// neighbouring markers sound distinct.
func MarkerFrequency(position int) float64 {
	steps := [...]float64{0, 2, 4, 7, 9}
	if position < 0 {
		position = 0
	}
	octave := position / len(steps)
	semis := steps[position%len(steps)] + 12*float64(octave%3)
	return 440 * math.Pow(2, semis/12)
}
