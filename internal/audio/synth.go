// Package audio synthesizes the platformer's sound events with beep.
// There are no sample files: every named sound is a short generated voice.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays sound requests through the system speaker.
// Until Initialize succeeds every call is a no-op, so the game runs
// silently on machines without an audio device.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string][]*beep.Ctrl
	rng         *rand.Rand
	initialized bool
	muted       bool
	logger      *log.Logger
}

var _ sim.SoundSink = (*Synth)(nil)

// NewSynth creates a synth. Call Initialize to open the speaker.
func NewSynth(logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		loops:  make(map[string][]*beep.Ctrl),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.WithPrefix("audio"),
	}
}

// Initialize opens the speaker.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// SetMuted silences new sounds without closing the speaker.
func (s *Synth) SetMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = m
}

// Play implements sim.SoundSink. Positions are ignored; the terminal has
// no listener to pan against.
func (s *Synth) Play(req host.SoundRequest, groupVolume float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted {
		return
	}
	st := s.streamer(req, float64(req.Volume*groupVolume))

	if req.Loop {
		ctrl := &beep.Ctrl{Streamer: st}
		s.loops[req.Name] = append(s.loops[req.Name], ctrl)
		s.add(ctrl)
		return
	}
	s.add(st)
}

// streamer builds the voice for req. Streamers run on the speaker
// goroutine, so each gets its own random source seeded from s.rng.
// Caller holds s.mu.
func (s *Synth) streamer(req host.SoundRequest, vol float64) beep.Streamer {
	rng := rand.New(rand.NewSource(s.rng.Int63()))
	if !req.Loop {
		return withVolume(Voice(req.Name, req.Grouped, sampleRate, rng), vol)
	}
	return beep.Iterate(func() beep.Streamer {
		return withVolume(Voice(req.Name, req.Grouped, sampleRate, rng), vol)
	})
}

// add hands a streamer to the mixer. The speaker goroutine reads the mixer,
// so it is locked for the call.
func (s *Synth) add(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Stop implements sim.SoundSink. Only looping sounds can be stopped by
// name; one-shots are short enough to finish.
func (s *Synth) Stop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	for _, c := range s.loops[name] {
		c.Streamer = nil
	}
	speaker.Unlock()
	delete(s.loops, name)
}

// StopAll implements sim.SoundSink.
func (s *Synth) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.loops = make(map[string][]*beep.Ctrl)
}

// Cleanup stops all sounds. beep has no way to close the speaker, so the
// mixer is only emptied.
func (s *Synth) Cleanup() {
	s.StopAll()
	s.mu.Lock()
	s.initialized = false
	s.mu.Unlock()
	s.logger.Debug("audio stopped")
}
