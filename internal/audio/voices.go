package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/scripts"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// glide is an oscillator whose pitch slides linearly from one frequency to
// another over its duration.
type glide struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newGlide(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate, rng *rand.Rand) *glide {
	return &glide{from: from, to: to, total: rate.N(d), wave: wave, rate: rate, rng: rng}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		var val float64
		switch g.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * g.phase)
		case WaveSquare:
			val = 1
			if g.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = g.rng.Float64()*2 - 1
		}

		// Fade the tail so one-shots end without a click.
		fade := 1 - float64(g.pos)/float64(g.total)
		samples[i][0] = val * fade
		samples[i][1] = val * fade

		freq := g.from + (g.to-g.from)*float64(g.pos)/float64(g.total)
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// withVolume scales s linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Voice builds the synthesized streamer for a named sound event.
// Grouped sounds pick a random variant, mimicking a random pick from a
// group of recorded samples.
func Voice(name string, grouped bool, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	detune := 1.0
	if grouped {
		detune = 0.85 + rng.Float64()*0.3
	}

	switch name {
	case scripts.SoundJump:
		return withVolume(newGlide(300*detune, 620*detune, 120*time.Millisecond, WaveSine, rate, rng), 0.6)
	case scripts.SoundJumpEnhanced:
		return beep.Mix(
			withVolume(newGlide(400, 1200, 220*time.Millisecond, WaveSquare, rate, rng), 0.15),
			withVolume(newGlide(200, 600, 220*time.Millisecond, WaveSine, rate, rng), 0.4),
		)
	case scripts.SoundDash:
		return beep.Mix(
			withVolume(newGlide(0, 0, 150*time.Millisecond, WaveNoise, rate, rng), 0.25),
			withVolume(newGlide(900, 300, 150*time.Millisecond, WaveSine, rate, rng), 0.3),
		)
	case scripts.SoundFootstep:
		return beep.Mix(
			withVolume(newGlide(0, 0, 35*time.Millisecond, WaveNoise, rate, rng), 0.2),
			withVolume(newGlide(110*detune, 70*detune, 35*time.Millisecond, WaveSine, rate, rng), 0.4),
		)
	default:
		return withVolume(newGlide(440, 440, 80*time.Millisecond, WaveSine, rate, rng), 0.3)
	}
}
