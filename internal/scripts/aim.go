package scripts

import (
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// AimProvider supplies the world point a character aims at.
type AimProvider interface {
	AimTarget() (core.Vec2, bool)
}

// AimSlot holds the scene's active reticle. The zero value is empty.
type AimSlot struct {
	mu      sync.RWMutex
	reticle *Reticle
}

// AimUser is implemented by behaviors that take the scene's AimSlot.
type AimUser interface {
	UseAim(slot *AimSlot)
}

// Register makes r the active reticle. It reports whether another reticle
// was already registered; the newer one wins.
func (s *AimSlot) Register(r *Reticle) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced = s.reticle != nil && s.reticle != r
	s.reticle = r
	return replaced
}

// Reticle returns the active reticle, or nil.
func (s *AimSlot) Reticle() *Reticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reticle
}

// AimTarget implements AimProvider.
func (s *AimSlot) AimTarget() (core.Vec2, bool) {
	r := s.Reticle()
	if r == nil {
		return core.Vec2{}, false
	}
	return r.Position(), true
}
