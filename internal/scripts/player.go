package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// Player turns keyboard input into character input and aims the character
// at the reticle.
type Player struct {
	behavior.Base
	aim       AimProvider
	character *Character
}

// UseAim implements AimUser.
func (p *Player) UseAim(slot *AimSlot) {
	if slot != nil {
		p.aim = slot
	}
}

// SetAim sets the aim source directly.
func (p *Player) SetAim(a AimProvider) {
	p.aim = a
}

func (p *Player) OnStart() {
	var ok bool
	p.character, ok = behavior.Get[*Character](p.Ctx.Runtime, p.Entity().ID())
	if !ok {
		p.Logger().Warn("player has no character controller", "entity", p.Entity().ID())
	}
}

func (p *Player) OnUpdate(dt float32) {
	h := p.Host()
	if h.Paused() || p.character == nil {
		return
	}

	var axis float32
	switch {
	case h.KeyHeld(host.KeyA):
		axis = -1
	case h.KeyHeld(host.KeyD):
		axis = 1
	}
	p.character.SetInput(axis, h.KeyPressed(host.KeySpace))

	if p.aim == nil {
		return
	}
	if target, ok := p.aim.AimTarget(); ok {
		p.character.AimAt(target)
	}
}
