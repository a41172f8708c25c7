package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Flipper mirrors its entity horizontally to face the pointer.
type Flipper struct {
	behavior.Base
}

func (f *Flipper) OnUpdate(dt float32) {
	h := f.Host()
	if h.Paused() {
		return
	}
	e := f.Entity()
	dir := h.PointerWorldPosition().Sub(e.Position())
	e.SetLocalScale(core.V2(core.Sign(dir.X()), 1))
}
