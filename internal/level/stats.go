package level

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/scripts"
)

// Stats summarizes a run.
type Stats struct {
	Frames    int
	Elapsed   time.Duration
	Jumps     int
	Dashes    int
	Footsteps int
	Respawns  int
	MaxHeight float32 // Highest climb above where the player first landed
	Distance  float32 // Horizontal distance travelled
}

// Stats returns the run summary so far.
func (l *Level) Stats() Stats {
	return l.stats
}

// track consumes this frame's audio log and the player's motion.
func (l *Level) track(dt float32) {
	l.stats.Frames++
	l.stats.Elapsed += time.Duration(float64(dt) * float64(time.Second))

	for _, s := range l.World.DrainSounds() {
		switch s.Name {
		case scripts.SoundJump:
			l.stats.Jumps++
		case scripts.SoundDash:
			l.stats.Dashes++
		case scripts.SoundFootstep:
			l.stats.Footsteps++
		}
	}

	if l.player == host.None || !l.World.Exists(l.player) {
		return
	}
	pos := l.World.WorldPosition(l.player)
	if !l.landed && l.World.Grounded(l.player) {
		l.rest, l.landed = pos.Y(), true
	}
	if h := pos.Y() - l.rest; l.landed && h > l.stats.MaxHeight {
		l.stats.MaxHeight = h
	}
	l.stats.Distance += core.Abs(l.World.Velocity(l.player).X()) * dt

	// A zero floor means the level is unbounded.
	if l.cfg.Bounds.MinY != 0 && pos.Y() < l.cfg.Bounds.MinY {
		l.Respawn()
	}
}
