package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// inputState tracks key levels for the current and previous frame.
// Edges are derived by comparing the two; Step rolls them over.
type inputState struct {
	held    map[host.KeyCode]bool
	prev    map[host.KeyCode]bool
	taps    map[host.KeyCode]bool
	pointer core.Vec2
}

func newInputState() inputState {
	return inputState{
		held: make(map[host.KeyCode]bool),
		prev: make(map[host.KeyCode]bool),
		taps: make(map[host.KeyCode]bool),
	}
}

func (s *inputState) advance() {
	for k := range s.prev {
		delete(s.prev, k)
	}
	for k, v := range s.held {
		s.prev[k] = v
	}
	for k := range s.taps {
		s.held[k] = false
		delete(s.taps, k)
	}
}

// PressKey marks k as held until ReleaseKey.
func (w *World) PressKey(k host.KeyCode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.held[k] = true
	delete(w.input.taps, k)
}

// ReleaseKey marks k as up.
func (w *World) ReleaseKey(k host.KeyCode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.held[k] = false
	delete(w.input.taps, k)
}

// TapKey holds k for exactly the next frame.
func (w *World) TapKey(k host.KeyCode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.held[k] = true
	w.input.taps[k] = true
}

// SetPointer moves the pointer to a world position.
func (w *World) SetPointer(p core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.pointer = p
}

func (w *World) KeyHeld(k host.KeyCode) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.input.held[k]
}

func (w *World) KeyPressed(k host.KeyCode) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.input.held[k] && !w.input.prev[k]
}

func (w *World) KeyReleased(k host.KeyCode) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.input.held[k] && w.input.prev[k]
}

func (w *World) PointerWorldPosition() core.Vec2 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.input.pointer
}
