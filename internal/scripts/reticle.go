package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Reticle follows the pointer. It keeps tracking while the game is paused,
// from its late update.
type Reticle struct {
	behavior.Base
	slot     *AimSlot
	position core.Vec2
}

// UseAim implements AimUser.
func (r *Reticle) UseAim(slot *AimSlot) {
	r.slot = slot
}

func (r *Reticle) OnStart() {
	r.position = r.Entity().Position()
	if r.slot == nil {
		r.Logger().Debug("reticle has no aim slot", "entity", r.Entity().ID())
		return
	}
	if r.slot.Register(r) {
		r.Logger().Warn("multiple reticle instances", "entity", r.Entity().ID())
	}
}

func (r *Reticle) OnUpdate(dt float32) {
	if !r.Host().Paused() {
		r.follow()
	}
}

func (r *Reticle) LateUpdate(dt float32) {
	if r.Host().Paused() {
		r.follow()
	}
}

func (r *Reticle) follow() {
	p := r.Host().PointerWorldPosition()
	r.Entity().SetPosition(p)
	r.position = p
}

// Position returns where the reticle was last placed.
func (r *Reticle) Position() core.Vec2 {
	return r.position
}
