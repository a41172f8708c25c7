package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Pivot rotates its entity to face a direction or point.
type Pivot struct {
	behavior.Base
}

// Rotate faces dir. The x component is mirrored when the entity is flipped
// so the rotation reads the same on a mirrored sprite.
func (p *Pivot) Rotate(dir core.Vec2) {
	e := p.Entity()
	dir[0] *= core.Sign(e.Scale().X())
	e.SetRotation(core.AngleDegrees(dir))
}

// RotateTowards faces the world point target.
func (p *Pivot) RotateTowards(target core.Vec2) {
	p.Rotate(target.Sub(p.Entity().Position()))
}
