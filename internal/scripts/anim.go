package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// CharacterAnim drives the animator of the entity it is attached to.
type CharacterAnim struct {
	behavior.Base
	current string
}

// SetAnimation switches the animation. Looping is set before the name so
// the new clip starts in the right mode.
func (a *CharacterAnim) SetAnimation(name string, looping bool) {
	host.Animator{Animation: a.Host(), Entity: a.Entity().ID()}.Play(name, looping)
	a.current = name
}

// Current returns the last animation requested.
func (a *CharacterAnim) Current() string {
	return a.current
}
