package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/scripts"
)

// drain streams s to completion and returns its length and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestVoicesAreShortAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	names := []string{
		scripts.SoundJump, scripts.SoundJumpEnhanced,
		scripts.SoundDash, scripts.SoundFootstep, "Unknown",
	}
	for _, name := range names {
		for _, grouped := range []bool{false, true} {
			n, peak := drain(t, Voice(name, grouped, sampleRate, rng))
			if n == 0 || n > sampleRate.N(300*time.Millisecond) {
				t.Errorf("%s grouped=%v: %d samples", name, grouped, n)
			}
			if peak > 1 || peak == 0 {
				t.Errorf("%s grouped=%v: peak %v", name, grouped, peak)
			}
		}
	}
}

func TestGlideLength(t *testing.T) {
	g := newGlide(100, 200, 10*time.Millisecond, WaveSine, sampleRate, rand.New(rand.NewSource(1)))
	n, _ := drain(t, g)
	if want := sampleRate.N(10 * time.Millisecond); n != want {
		t.Errorf("glide length = %d, want %d", n, want)
	}
}

func TestSilentVolume(t *testing.T) {
	g := newGlide(440, 440, 10*time.Millisecond, WaveSquare, sampleRate, rand.New(rand.NewSource(1)))
	if _, peak := drain(t, withVolume(g, 0)); peak != 0 {
		t.Errorf("silent volume peak = %v", peak)
	}
}

func TestSynthWithoutSpeakerIsNoop(t *testing.T) {
	s := NewSynth(nil)
	s.Play(host.SoundRequest{Name: scripts.SoundJump, Volume: 1, Loop: true}, 1)
	s.Stop(scripts.SoundJump)
	s.StopAll()
	s.Cleanup()
	if len(s.loops) != 0 {
		t.Errorf("uninitialized synth kept loops: %v", s.loops)
	}
}

func TestLoopOwnsItsRandomSource(t *testing.T) {
	s := NewSynth(nil)
	s.rng = rand.New(rand.NewSource(7))

	s.mu.Lock()
	loop := s.streamer(host.SoundRequest{Name: scripts.SoundDash, Grouped: true, Volume: 1, Loop: true}, 1)
	s.mu.Unlock()

	// Several dash lengths, so the loop regenerates its voice.
	buf := make([][2]float64, 512)
	for i := 0; i < 40; i++ {
		if n, ok := loop.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("loop ended after %d iterations", i)
		}
	}

	want := rand.New(rand.NewSource(7))
	want.Int63()
	if got, exp := s.rng.Int63(), want.Int63(); got != exp {
		t.Errorf("looping voice drew from the shared source: next = %d, want %d", got, exp)
	}
}
